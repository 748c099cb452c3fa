package usecase

import (
	"regexp"
	"strconv"

	"repair_desk/internal/domain/entities"
)

var invoiceAmountPattern = regexp.MustCompile(`(?i)amount[-_](\d+)`)

// ParseInvoiceAmount reads the amount encoded in an invoice file name
// ("invoice-1-amount-500.pdf" -> 500). ok is false when the name carries none.
func ParseInvoiceAmount(fileName string) (amount float64, ok bool) {
	m := invoiceAmountPattern.FindStringSubmatch(fileName)
	if len(m) < 2 {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FinancialSummary is derived from the payments and invoice attachments of
// one device.
//
// Outstanding is nil when no invoice amount could be read; the file name
// convention is the only source of an amount owed.
type FinancialSummary struct {
	TotalPaid     float64  `json:"total_paid"`
	InvoiceTotal  float64  `json:"invoice_total"`
	Outstanding   *float64 `json:"outstanding"`
	TotalDeposits float64  `json:"total_deposits"`
	TotalRefunds  float64  `json:"total_refunds"`
	PendingCount  int      `json:"pending_count"`
}

func Summarize(payments []entities.Payment, attachments []entities.Attachment) FinancialSummary {
	var s FinancialSummary
	for _, p := range payments {
		if !p.IsCompleted() {
			if p.Status == entities.PaymentStatusPending {
				s.PendingCount++
			}
			continue
		}
		s.TotalPaid += p.Amount
		switch p.PaymentType {
		case entities.PaymentTypeDeposit:
			s.TotalDeposits += p.Amount
		case entities.PaymentTypeRefund:
			s.TotalRefunds += p.Amount
		}
	}

	for _, a := range attachments {
		if !a.IsInvoice() {
			continue
		}
		if amount, ok := ParseInvoiceAmount(a.FileName); ok {
			s.InvoiceTotal += amount
		}
	}

	if s.InvoiceTotal > 0 {
		outstanding := s.InvoiceTotal - s.TotalPaid
		if outstanding < 0 {
			outstanding = 0
		}
		s.Outstanding = &outstanding
	}
	return s
}
