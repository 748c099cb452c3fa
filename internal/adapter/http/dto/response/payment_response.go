package response

import (
	"encoding/json"
	"time"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase"
)

type PaymentResponse struct {
	ID          string    `json:"id"`
	DeviceID    string    `json:"device_id"`
	CustomerID  string    `json:"customer_id,omitempty"`
	Amount      float64   `json:"amount"`
	AmountLabel string    `json:"amount_label"`
	Method      string    `json:"method"`
	PaymentType string    `json:"payment_type"`
	TypeLabel   string    `json:"payment_type_label"`
	Status      string    `json:"status"`
	PaymentDate time.Time `json:"payment_date"`
	CreatedBy   string    `json:"created_by,omitempty"`
	Reference   string    `json:"reference,omitempty"`

	ProviderPaymentID string         `json:"provider_payment_id,omitempty"`
	MPPayload         map[string]any `json:"mp_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	res := PaymentResponse{
		ID:                p.ID,
		DeviceID:          p.DeviceID,
		CustomerID:        p.CustomerID,
		Amount:            p.Amount,
		AmountLabel:       usecase.FormatCurrency(p.Amount),
		Method:            string(p.Method),
		PaymentType:       string(p.PaymentType),
		TypeLabel:         p.PaymentType.Label(),
		Status:            string(p.Status),
		PaymentDate:       p.PaymentDate,
		CreatedBy:         p.CreatedBy,
		Reference:         p.Reference,
		ProviderPaymentID: p.ProviderPaymentID,
	}
	if len(p.ProviderPayloadRaw) > 0 {
		var payload map[string]any
		if err := json.Unmarshal(p.ProviderPayloadRaw, &payload); err == nil {
			res.MPPayload = payload
		}
	}
	return res
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}
