package response

import (
	"encoding/json"
	"testing"
	"time"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Payment{
		ID:                 "pay-1",
		DeviceID:           "dev-1",
		Amount:             1500,
		Method:             entities.PaymentMethodCard,
		PaymentType:        entities.PaymentTypeDeposit,
		Status:             entities.PaymentStatusPending,
		PaymentDate:        now,
		ProviderPaymentID:  "123",
		ProviderPayloadRaw: json.RawMessage(`{"id":123,"status":"in_process"}`),
	}

	res := FromPayment(p)
	if res.ID != "pay-1" || res.DeviceID != "dev-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.AmountLabel != "TSh 1,500.00" || res.TypeLabel != "Deposit" {
		t.Fatalf("unexpected labels: %+v", res)
	}
	if res.MPPayload["status"] != "in_process" {
		t.Fatalf("unexpected payload: %+v", res.MPPayload)
	}

	p.ProviderPayloadRaw = json.RawMessage(`{`)
	if res := FromPayment(p); res.MPPayload != nil {
		t.Fatalf("expected malformed payload to be dropped, got %+v", res.MPPayload)
	}
}

func TestFromCountdown(t *testing.T) {
	empty := FromCountdown(nil)
	if empty.Target != nil || empty.Label != "-" || len(empty.Units) != 0 {
		t.Fatalf("unexpected empty countdown: %+v", empty)
	}

	target := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	c := &usecase.Countdown{Target: target, Remaining: 90 * time.Minute, Units: []string{"1h", "30m"}, Label: "1h 30m", Color: usecase.CountdownAmber}
	res := FromCountdown(c)
	if res.Target == nil || !res.Target.Equal(target) {
		t.Fatalf("unexpected target: %+v", res)
	}
	if res.RemainingSeconds != 5400 || res.Color != "amber" {
		t.Fatalf("unexpected countdown: %+v", res)
	}
}

func TestFromDeviceActivity_HidesPaymentsWithoutFinancials(t *testing.T) {
	a := usecase.DeviceActivity{
		Device:   entities.Device{ID: "dev-1"},
		Payments: []entities.Payment{{ID: "pay-1", Amount: 10}},
	}
	if res := FromDeviceActivity(a); res.Payments != nil || res.Financials != nil {
		t.Fatalf("expected no financial data, got %+v", res)
	}

	outstanding := 250.0
	a.Financials = &usecase.FinancialSummary{TotalPaid: 750, InvoiceTotal: 1000, Outstanding: &outstanding}
	res := FromDeviceActivity(a)
	if len(res.Payments) != 1 || res.Financials == nil {
		t.Fatalf("expected financial data, got %+v", res)
	}
	if res.Financials.OutstandingLabel != "TSh 250.00" || res.Financials.TotalPaidLabel != "TSh 750.00" {
		t.Fatalf("unexpected labels: %+v", res.Financials)
	}
	if res.Phases.TechnicianDuration != "-" {
		t.Fatalf("expected empty phase duration, got %q", res.Phases.TechnicianDuration)
	}
}
