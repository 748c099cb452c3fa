package interfaces

import "context"

// ISMSSender delivers a text message and returns the provider message id.
type ISMSSender interface {
	Send(ctx context.Context, to, body string) (providerID string, err error)
}
