package repository

import (
	"context"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"
)

const defaultPointsTableName = "points_transactions"

type pointsTransactionItem struct {
	ID              string `dynamodbav:"id"`
	DeviceID        string `dynamodbav:"device_id"`
	CustomerID      string `dynamodbav:"customer_id"`
	PointsChange    int    `dynamodbav:"points_change"`
	TransactionType string `dynamodbav:"transaction_type"`
	Reason          string `dynamodbav:"reason"`
	CreatedBy       string `dynamodbav:"created_by,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
}

type PointsTransactionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPointsTransactionRepository = (*PointsTransactionDynamoRepository)(nil)

func NewPointsTransactionDynamoRepository(ddb DynamoAPI, tableName string) *PointsTransactionDynamoRepository {
	return &PointsTransactionDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultPointsTableName)}
}

func (r *PointsTransactionDynamoRepository) ListByDeviceID(ctx context.Context, deviceID string) ([]entities.PointsTransaction, error) {
	items, err := queryByDeviceID[pointsTransactionItem](ctx, r.ddb, r.tableName, deviceID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.PointsTransaction, 0, len(items))
	for _, it := range items {
		out = append(out, entities.PointsTransaction{
			ID:              it.ID,
			DeviceID:        it.DeviceID,
			CustomerID:      it.CustomerID,
			PointsChange:    it.PointsChange,
			TransactionType: it.TransactionType,
			Reason:          it.Reason,
			CreatedBy:       it.CreatedBy,
			CreatedAt:       parseTime(it.CreatedAt),
		})
	}
	return out, nil
}
