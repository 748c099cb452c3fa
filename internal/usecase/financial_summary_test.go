package usecase

import (
	"testing"

	"repair_desk/internal/domain/entities"
)

func TestParseInvoiceAmount(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		ok     bool
	}{
		{"invoice-1-amount-500.pdf", 500, true},
		{"invoice-amount-150.pdf", 150, true},
		{"INVOICE_AMOUNT_75.png", 75, true},
		{"invoice.pdf", 0, false},
		{"amount-.pdf", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseInvoiceAmount(tc.name)
		if ok != tc.ok || got != tc.amount {
			t.Fatalf("%q: expected (%v,%v), got (%v,%v)", tc.name, tc.amount, tc.ok, got, ok)
		}
	}
}

func invoice(name string) entities.Attachment {
	return entities.Attachment{FileName: name, Type: entities.AttachmentTypeInvoice}
}

func completed(amount float64, typ entities.PaymentType) entities.Payment {
	return entities.Payment{Amount: amount, PaymentType: typ, Status: entities.PaymentStatusCompleted}
}

func TestSummarize(t *testing.T) {
	t.Run("only completed payments count", func(t *testing.T) {
		s := Summarize([]entities.Payment{
			completed(100, entities.PaymentTypePayment),
			{Amount: 50, Status: entities.PaymentStatusPending},
			{Amount: 70, Status: entities.PaymentStatusFailed},
			completed(100, entities.PaymentTypeDeposit),
		}, []entities.Attachment{invoice("invoice-amount-500.pdf")})

		if s.TotalPaid != 200 {
			t.Fatalf("expected total paid 200, got %v", s.TotalPaid)
		}
		if s.TotalDeposits != 100 || s.PendingCount != 1 {
			t.Fatalf("unexpected breakdown: %+v", s)
		}
		if s.Outstanding == nil || *s.Outstanding != 300 {
			t.Fatalf("expected outstanding 300, got %v", s.Outstanding)
		}
	})

	t.Run("outstanding is floored at zero", func(t *testing.T) {
		s := Summarize([]entities.Payment{completed(600, entities.PaymentTypePayment)}, []entities.Attachment{invoice("invoice-amount-500.pdf")})
		if s.Outstanding == nil || *s.Outstanding != 0 {
			t.Fatalf("expected outstanding 0, got %v", s.Outstanding)
		}
	})

	t.Run("no invoice amount means no outstanding", func(t *testing.T) {
		s := Summarize([]entities.Payment{completed(10, entities.PaymentTypePayment)}, []entities.Attachment{
			invoice("invoice.pdf"),
			{FileName: "photo-amount-900.jpg", Type: "photo"},
		})
		if s.InvoiceTotal != 0 || s.Outstanding != nil {
			t.Fatalf("expected no invoice total, got %+v", s)
		}
	})

	t.Run("invoice amounts add up", func(t *testing.T) {
		s := Summarize(nil, []entities.Attachment{invoice("invoice-1-amount-100.pdf"), invoice("invoice-2-amount-250.pdf")})
		if s.InvoiceTotal != 350 || s.Outstanding == nil || *s.Outstanding != 350 {
			t.Fatalf("unexpected summary: %+v", s)
		}
	})

	t.Run("refunds are tracked separately", func(t *testing.T) {
		s := Summarize([]entities.Payment{completed(40, entities.PaymentTypeRefund)}, nil)
		if s.TotalRefunds != 40 {
			t.Fatalf("expected refunds 40, got %v", s.TotalRefunds)
		}
	})
}

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		1500:        "TSh 1,500.00",
		0:           "TSh 0.00",
		150:         "TSh 150.00",
		1234567.891: "TSh 1,234,567.89",
	}
	for in, want := range cases {
		if got := FormatCurrency(in); got != want {
			t.Fatalf("FormatCurrency(%v): expected %q, got %q", in, want, got)
		}
	}
}
