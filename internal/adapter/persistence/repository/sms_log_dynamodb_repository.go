package repository

import (
	"context"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"
)

const defaultSMSLogsTableName = "sms_logs"

type smsLogItem struct {
	ID           string `dynamodbav:"id"`
	DeviceID     string `dynamodbav:"device_id,omitempty"`
	CustomerID   string `dynamodbav:"customer_id,omitempty"`
	PhoneNumber  string `dynamodbav:"phone_number"`
	Message      string `dynamodbav:"message_content"`
	Direction    string `dynamodbav:"direction"`
	Status       string `dynamodbav:"status"`
	ErrorMessage string `dynamodbav:"error_message,omitempty"`
	ProviderID   string `dynamodbav:"provider_id,omitempty"`
	SentBy       string `dynamodbav:"sent_by,omitempty"`
	SentAt       string `dynamodbav:"sent_at,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// SMSLogDynamoRepository keeps one row per SMS attempt. Rows without a device
// are excluded from the device_id-index and never appear in device listings.
type SMSLogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISMSLogRepository = (*SMSLogDynamoRepository)(nil)

func NewSMSLogDynamoRepository(ddb DynamoAPI, tableName string) *SMSLogDynamoRepository {
	return &SMSLogDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultSMSLogsTableName)}
}

func (r *SMSLogDynamoRepository) Create(ctx context.Context, s entities.SMSLog) (entities.SMSLog, error) {
	it := smsLogItem{
		ID:           s.ID,
		DeviceID:     s.DeviceID,
		CustomerID:   s.CustomerID,
		PhoneNumber:  s.PhoneNumber,
		Message:      s.Message,
		Direction:    s.Direction,
		Status:       s.Status,
		ErrorMessage: s.ErrorMessage,
		ProviderID:   s.ProviderID,
		SentBy:       s.SentBy,
		SentAt:       formatTime(s.SentAt),
		CreatedAt:    formatTime(s.CreatedAt),
	}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.SMSLog{}, err
	}
	return s, nil
}

func (r *SMSLogDynamoRepository) ListByDeviceID(ctx context.Context, deviceID string) ([]entities.SMSLog, error) {
	items, err := queryByDeviceID[smsLogItem](ctx, r.ddb, r.tableName, deviceID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.SMSLog, 0, len(items))
	for _, it := range items {
		out = append(out, entities.SMSLog{
			ID:           it.ID,
			DeviceID:     it.DeviceID,
			CustomerID:   it.CustomerID,
			PhoneNumber:  it.PhoneNumber,
			Message:      it.Message,
			Direction:    it.Direction,
			Status:       it.Status,
			ErrorMessage: it.ErrorMessage,
			ProviderID:   it.ProviderID,
			SentBy:       it.SentBy,
			SentAt:       parseTime(it.SentAt),
			CreatedAt:    parseTime(it.CreatedAt),
		})
	}
	return out, nil
}
