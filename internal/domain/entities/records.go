package entities

import "time"

// Transition is one recorded device status change. Append-only.
//
// FromStatus is empty for the intake transition. PerformedBy is empty for
// system-generated changes.
type Transition struct {
	ID          string       `json:"id"`
	DeviceID    string       `json:"device_id"`
	FromStatus  DeviceStatus `json:"from_status,omitempty"`
	ToStatus    DeviceStatus `json:"to_status"`
	PerformedBy string       `json:"performed_by,omitempty"`
	Signature   string       `json:"signature,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

const RemarkTypeTechnicianNote = "technician_note"

// Remark is a free-text note attached to a device.
type Remark struct {
	ID         string    `json:"id"`
	DeviceID   string    `json:"device_id"`
	Content    string    `json:"content"`
	CreatedBy  string    `json:"created_by,omitempty"`
	RemarkType string    `json:"remark_type,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

const AttachmentTypeInvoice = "invoice"

// Attachment is a file uploaded against a device. Invoice attachments carry
// their amount in the file name ("invoice-12-amount-500.pdf").
type Attachment struct {
	ID         string    `json:"id"`
	DeviceID   string    `json:"device_id"`
	FileName   string    `json:"file_name"`
	FileURL    string    `json:"file_url"`
	Type       string    `json:"type"`
	UploadedBy string    `json:"uploaded_by,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func (a Attachment) IsInvoice() bool {
	return a.Type == AttachmentTypeInvoice
}

type Rating struct {
	ID           string    `json:"id"`
	DeviceID     string    `json:"device_id"`
	TechnicianID string    `json:"technician_id,omitempty"`
	Score        int       `json:"score"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	AuditActionAttachmentUploaded = "attachment_uploaded"
	AuditActionAttachmentDeleted  = "attachment_deleted"
	AuditActionStatusUpdated      = "status_updated"
	AuditActionPaymentRecorded    = "payment_recorded"
)

// AuditLog is an entity-scoped audit entry. Device entries use EntityType "device".
type AuditLog struct {
	ID         string         `json:"id"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Action     string         `json:"action"`
	UserID     string         `json:"user_id,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// PointsTransaction is a loyalty points movement linked to a device repair.
type PointsTransaction struct {
	ID              string    `json:"id"`
	DeviceID        string    `json:"device_id"`
	CustomerID      string    `json:"customer_id"`
	PointsChange    int       `json:"points_change"`
	TransactionType string    `json:"transaction_type"`
	Reason          string    `json:"reason"`
	CreatedBy       string    `json:"created_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

const (
	SMSDirectionOutbound = "outbound"
	SMSDirectionInbound  = "inbound"

	SMSStatusSent    = "sent"
	SMSStatusFailed  = "failed"
	SMSStatusPending = "pending"
)

// SMSLog records every SMS attempt, successful or not.
type SMSLog struct {
	ID           string    `json:"id"`
	DeviceID     string    `json:"device_id,omitempty"`
	CustomerID   string    `json:"customer_id,omitempty"`
	PhoneNumber  string    `json:"phone_number"`
	Message      string    `json:"message_content"`
	Direction    string    `json:"direction"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	ProviderID   string    `json:"provider_id,omitempty"`
	SentBy       string    `json:"sent_by,omitempty"`
	SentAt       time.Time `json:"sent_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// Timestamp is the moment the message left or arrived, falling back to creation.
func (s SMSLog) Timestamp() time.Time {
	if !s.SentAt.IsZero() {
		return s.SentAt
	}
	return s.CreatedAt
}
