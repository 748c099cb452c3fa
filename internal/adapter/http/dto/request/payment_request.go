package request

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RecordPaymentRequest is the front-desk payment form.
//
// Amount arrives as a JSON number or a numeric string. `mp_payload` is only
// read for card payments and is forwarded to Mercado Pago as-is.

type RecordPaymentRequest struct {
	Amount      json.RawMessage `json:"amount"`
	Method      string          `json:"method" binding:"required"`
	PaymentType string          `json:"payment_type"`
	CustomerID  string          `json:"customer_id"`
	Reference   string          `json:"reference"`
	MPPayload   json.RawMessage `json:"mp_payload"`
}

// ParseAmount reports false unless the amount is a finite number above zero.
func (r RecordPaymentRequest) ParseAmount() (float64, bool) {
	raw := strings.TrimSpace(string(r.Amount))
	if raw == "" || raw == "null" {
		return 0, false
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
