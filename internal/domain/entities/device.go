package entities

import (
	"strings"
	"time"
)

// DeviceStatus is the repair stage of a device.
//
// Domain notes:
//   - Status is a plain string written by the status-update command; no
//     transition graph is enforced, only membership in the enumeration.
//   - Every change appends exactly one Transition.

type DeviceStatus string

const (
	DeviceStatusAssigned               DeviceStatus = "assigned"
	DeviceStatusDiagnosisStarted       DeviceStatus = "diagnosis-started"
	DeviceStatusAwaitingParts          DeviceStatus = "awaiting-parts"
	DeviceStatusInRepair               DeviceStatus = "in-repair"
	DeviceStatusReassembledTesting     DeviceStatus = "reassembled-testing"
	DeviceStatusRepairComplete         DeviceStatus = "repair-complete"
	DeviceStatusReturnedToCustomerCare DeviceStatus = "returned-to-customer-care"
	DeviceStatusDone                   DeviceStatus = "done"
	DeviceStatusFailed                 DeviceStatus = "failed"
)

var deviceStatuses = map[DeviceStatus]struct{}{
	DeviceStatusAssigned:               {},
	DeviceStatusDiagnosisStarted:       {},
	DeviceStatusAwaitingParts:          {},
	DeviceStatusInRepair:               {},
	DeviceStatusReassembledTesting:     {},
	DeviceStatusRepairComplete:         {},
	DeviceStatusReturnedToCustomerCare: {},
	DeviceStatusDone:                   {},
	DeviceStatusFailed:                 {},
}

func (s DeviceStatus) IsValid() bool {
	_, ok := deviceStatuses[s]
	return ok
}

// Words renders the status for humans: "in-repair" -> "in repair".
func (s DeviceStatus) Words() string {
	return strings.ReplaceAll(string(s), "-", " ")
}

// Device is a customer device taken in for repair.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (serial_number-index): serial_number
//
// Zero time values mean the timestamp was absent or could not be parsed.
type Device struct {
	ID                 string       `json:"id"`
	Brand              string       `json:"brand"`
	Model              string       `json:"model"`
	SerialNumber       string       `json:"serial_number"`
	Status             DeviceStatus `json:"status"`
	AssignedTo         string       `json:"assigned_to,omitempty"`
	CustomerID         string       `json:"customer_id"`
	ExpectedReturnDate time.Time    `json:"expected_return_date"`
	WarrantyStart      time.Time    `json:"warranty_start"`
	WarrantyEnd        time.Time    `json:"warranty_end"`
	WarrantyStatus     string       `json:"warranty_status,omitempty"`
	IssueDescription   string       `json:"issue_description"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}
