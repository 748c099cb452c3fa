package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// PaymentStatus is the processing outcome of a customer payment. Only
// completed payments count towards the amount paid.

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type PaymentType string

const (
	PaymentTypePayment PaymentType = "payment"
	PaymentTypeDeposit PaymentType = "deposit"
	PaymentTypeRefund  PaymentType = "refund"
)

func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypePayment, PaymentTypeDeposit, PaymentTypeRefund:
		return true
	}
	return false
}

// Label is the capitalised type used in activity descriptions.
func (t PaymentType) Label() string {
	switch t {
	case PaymentTypeDeposit:
		return "Deposit"
	case PaymentTypeRefund:
		return "Refund"
	default:
		return "Payment"
	}
}

type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodCard        PaymentMethod = "card"
	PaymentMethodTransfer    PaymentMethod = "transfer"
	PaymentMethodMPesa       PaymentMethod = "m-pesa"
	PaymentMethodAirtelMoney PaymentMethod = "airtel-money"
	PaymentMethodTigoPesa    PaymentMethod = "tigo-pesa"
)

// ParsePaymentMethod accepts the labels the front desk uses ("M-Pesa", "Card").
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer,
		PaymentMethodMPesa, PaymentMethodAirtelMoney, PaymentMethodTigoPesa:
		return m, true
	case "mpesa":
		return PaymentMethodMPesa, true
	}
	return "", false
}

// Payment is a customer payment recorded against a device.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (device_id-index): device_id
//
// Card payments processed through the provider keep its response in
// ProviderPayloadRaw for traceability.
type Payment struct {
	ID          string        `json:"id"`
	DeviceID    string        `json:"device_id"`
	CustomerID  string        `json:"customer_id"`
	Amount      float64       `json:"amount"`
	Method      PaymentMethod `json:"method"`
	PaymentType PaymentType   `json:"payment_type"`
	Status      PaymentStatus `json:"status"`
	PaymentDate time.Time     `json:"payment_date"`
	CreatedBy   string        `json:"created_by,omitempty"`
	Reference   string        `json:"reference,omitempty"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}

func (p Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}
