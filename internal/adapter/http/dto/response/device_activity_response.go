package response

import (
	"time"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase"
)

type FinancialSummaryResponse struct {
	TotalPaid         float64  `json:"total_paid"`
	TotalPaidLabel    string   `json:"total_paid_label"`
	InvoiceTotal      float64  `json:"invoice_total"`
	InvoiceTotalLabel string   `json:"invoice_total_label"`
	Outstanding       *float64 `json:"outstanding"`
	OutstandingLabel  string   `json:"outstanding_label"`
	TotalDeposits     float64  `json:"total_deposits"`
	TotalRefunds      float64  `json:"total_refunds"`
	PendingCount      int      `json:"pending_count"`
}

type RepairPhasesResponse struct {
	InRepairAt         *time.Time `json:"in_repair_at,omitempty"`
	RepairCompleteAt   *time.Time `json:"repair_complete_at,omitempty"`
	DoneAt             *time.Time `json:"done_at,omitempty"`
	TechnicianDuration string     `json:"technician_duration"`
	HandoverDuration   string     `json:"handover_duration"`
}

type DeviceActivityResponse struct {
	Device        entities.Device           `json:"device"`
	Timeline      []entities.TimelineEvent  `json:"timeline"`
	Activity      []entities.ActivityEvent  `json:"activity"`
	Remarks       []entities.Remark         `json:"remarks"`
	Payments      []PaymentResponse         `json:"payments,omitempty"`
	Attachments   []entities.Attachment     `json:"attachments"`
	Ratings       []entities.Rating         `json:"ratings"`
	Financials    *FinancialSummaryResponse `json:"financials,omitempty"`
	Phases        RepairPhasesResponse      `json:"phases"`
	Warranty      usecase.WarrantyInfo      `json:"warranty"`
	Countdown     CountdownResponse         `json:"countdown"`
	RepairHistory []entities.Device         `json:"repair_history"`
	UserNames     map[string]string         `json:"user_names"`
	Capabilities  usecase.Capabilities      `json:"capabilities"`
	GeneratedAt   time.Time                 `json:"generated_at"`
}

func FromDeviceActivity(a usecase.DeviceActivity) DeviceActivityResponse {
	res := DeviceActivityResponse{
		Device:        a.Device,
		Timeline:      a.Timeline,
		Activity:      a.Activity,
		Remarks:       a.Remarks,
		Attachments:   a.Attachments,
		Ratings:       a.Ratings,
		Phases:        fromRepairPhases(a.Phases),
		Warranty:      a.Warranty,
		Countdown:     FromCountdown(a.Countdown),
		RepairHistory: a.RepairHistory,
		UserNames:     a.UserNames,
		Capabilities:  a.Capabilities,
		GeneratedAt:   a.GeneratedAt,
	}
	if a.Financials != nil {
		res.Payments = FromPayments(a.Payments)
		res.Financials = fromFinancialSummary(*a.Financials)
	}
	return res
}

func fromFinancialSummary(s usecase.FinancialSummary) *FinancialSummaryResponse {
	res := &FinancialSummaryResponse{
		TotalPaid:         s.TotalPaid,
		TotalPaidLabel:    usecase.FormatCurrency(s.TotalPaid),
		InvoiceTotal:      s.InvoiceTotal,
		InvoiceTotalLabel: usecase.FormatCurrency(s.InvoiceTotal),
		Outstanding:       s.Outstanding,
		OutstandingLabel:  "-",
		TotalDeposits:     s.TotalDeposits,
		TotalRefunds:      s.TotalRefunds,
		PendingCount:      s.PendingCount,
	}
	if s.Outstanding != nil {
		res.OutstandingLabel = usecase.FormatCurrency(*s.Outstanding)
	}
	return res
}

func fromRepairPhases(p usecase.RepairPhases) RepairPhasesResponse {
	return RepairPhasesResponse{
		InRepairAt:         p.InRepairAt,
		RepairCompleteAt:   p.RepairCompleteAt,
		DoneAt:             p.DoneAt,
		TechnicianDuration: usecase.FormatDuration(p.Technician),
		HandoverDuration:   usecase.FormatDuration(p.Handover),
	}
}
