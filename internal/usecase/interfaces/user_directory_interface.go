package interfaces

import "context"

// IUserDirectory resolves user ids to display names in one batched call.
// Ids without a row are simply absent from the result.
type IUserDirectory interface {
	ResolveUserNames(ctx context.Context, ids []string) (map[string]string, error)
}
