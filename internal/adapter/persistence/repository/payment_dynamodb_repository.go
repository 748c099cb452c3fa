package repository

import (
	"context"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"
)

const defaultPaymentsTableName = "customer_payments"

type paymentItem struct {
	ID                 string `dynamodbav:"id"`
	DeviceID           string `dynamodbav:"device_id"`
	CustomerID         string `dynamodbav:"customer_id"`
	Amount             string `dynamodbav:"amount"`
	Method             string `dynamodbav:"method"`
	PaymentType        string `dynamodbav:"payment_type"`
	Status             string `dynamodbav:"status"`
	PaymentDate        string `dynamodbav:"payment_date"`
	CreatedBy          string `dynamodbav:"created_by,omitempty"`
	Reference          string `dynamodbav:"reference,omitempty"`
	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists customer payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: device_id-index (PK: device_id)

type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPaymentItem(p)); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) ListByDeviceID(ctx context.Context, deviceID string) ([]entities.Payment, error) {
	items, err := queryByDeviceID[paymentItem](ctx, r.ddb, r.tableName, deviceID)
	if err != nil {
		return nil, err
	}
	payments := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		DeviceID:           p.DeviceID,
		CustomerID:         p.CustomerID,
		Amount:             floatToString(p.Amount),
		Method:             string(p.Method),
		PaymentType:        string(p.PaymentType),
		Status:             string(p.Status),
		PaymentDate:        formatTime(p.PaymentDate),
		CreatedBy:          p.CreatedBy,
		Reference:          p.Reference,
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:                it.ID,
		DeviceID:          it.DeviceID,
		CustomerID:        it.CustomerID,
		Amount:            parseFloat(it.Amount),
		Method:            entities.PaymentMethod(it.Method),
		PaymentType:       entities.PaymentType(it.PaymentType),
		Status:            entities.PaymentStatus(it.Status),
		PaymentDate:       parseTime(it.PaymentDate),
		CreatedBy:         it.CreatedBy,
		Reference:         it.Reference,
		ProviderPaymentID: it.ProviderPaymentID,
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return p
}
