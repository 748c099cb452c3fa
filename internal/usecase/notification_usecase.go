package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/infrastructure/metrics"
	"repair_desk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	ErrEmptySMSMessage    = errors.New("sms message is required")
)

const (
	smsProviderNotConfigured = "sms provider not configured"
	defaultCountryCode       = "255"
)

type SendSMSInput struct {
	PhoneNumber string
	Message     string
	CustomerID  string
	DeviceID    string
	Sender      entities.User
}

// SMSResult never carries a Go error: provider failures are reported in
// Error and recorded in the SMS log.
type SMSResult struct {
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	ProviderID string `json:"provider_id,omitempty"`
	LogID      string `json:"log_id,omitempty"`
}

// INotificationUseCase sends customer SMS. Input validation and permission
// failures are returned as errors; delivery failures are not.

type INotificationUseCase interface {
	SendSms(ctx context.Context, in SendSMSInput) (SMSResult, error)
}

type NotificationUseCase struct {
	sender interfaces.ISMSSender
	logs   interfaces.ISMSLogRepository
	logger *zap.Logger
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

// NewNotificationUseCase accepts a nil sender; every send then fails with
// "sms provider not configured".
func NewNotificationUseCase(sender interfaces.ISMSSender, logs interfaces.ISMSLogRepository, logger *zap.Logger) *NotificationUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationUseCase{sender: sender, logs: logs, logger: logger}
}

func (u *NotificationUseCase) SendSms(ctx context.Context, in SendSMSInput) (SMSResult, error) {
	phone, ok := NormalizePhoneNumber(in.PhoneNumber)
	if !ok {
		return SMSResult{}, ErrInvalidPhoneNumber
	}
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return SMSResult{}, ErrEmptySMSMessage
	}
	if !CanSendSms(in.Sender) {
		return SMSResult{}, ErrForbidden
	}

	now := time.Now().UTC()
	entry := entities.SMSLog{
		ID:          uuid.NewString(),
		DeviceID:    strings.TrimSpace(in.DeviceID),
		CustomerID:  strings.TrimSpace(in.CustomerID),
		PhoneNumber: phone,
		Message:     message,
		Direction:   entities.SMSDirectionOutbound,
		SentBy:      in.Sender.ID,
		CreatedAt:   now,
	}

	var result SMSResult
	if u.sender == nil {
		result.Error = smsProviderNotConfigured
	} else if providerID, err := u.sender.Send(ctx, phone, message); err != nil {
		result.Error = err.Error()
	} else {
		result.Success = true
		result.ProviderID = providerID
	}

	if result.Success {
		entry.Status = entities.SMSStatusSent
		entry.ProviderID = result.ProviderID
		entry.SentAt = now
		metrics.SMSSentTotal.WithLabelValues("sent").Inc()
	} else {
		entry.Status = entities.SMSStatusFailed
		entry.ErrorMessage = result.Error
		metrics.SMSSentTotal.WithLabelValues("failed").Inc()
		u.logger.Warn("[sms][usecase] send failed",
			zap.String("device_id", entry.DeviceID),
			zap.String("error", result.Error),
		)
	}

	if u.logs != nil {
		if _, err := u.logs.Create(ctx, entry); err != nil {
			u.logger.Warn("[sms][usecase] sms log not written", zap.String("device_id", entry.DeviceID), zap.Error(err))
		} else {
			result.LogID = entry.ID
		}
	}
	return result, nil
}

// NormalizePhoneNumber converts local Tanzanian numbers to E.164:
// "0712 345 678" and "712345678" become "+255712345678". Numbers already
// carrying a country code keep it. Only ASCII digits count; anything else
// is dropped as a separator.
func NormalizePhoneNumber(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case strings.HasPrefix(digits, "00"):
		digits = digits[2:]
	case strings.HasPrefix(digits, "0") && len(digits) == 10:
		digits = defaultCountryCode + digits[1:]
	case len(digits) == 9:
		digits = defaultCountryCode + digits
	}

	if len(digits) < 10 || len(digits) > 15 {
		return "", false
	}
	return "+" + digits, true
}
