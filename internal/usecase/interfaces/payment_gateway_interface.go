package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external card payment providers (Mercado Pago).
//
// Card payments are processed through it and the provider response payload
// is persisted with the payment for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
