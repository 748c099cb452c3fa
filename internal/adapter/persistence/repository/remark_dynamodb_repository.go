package repository

import (
	"context"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"
)

const defaultRemarksTableName = "device_remarks"

type remarkItem struct {
	ID         string `dynamodbav:"id"`
	DeviceID   string `dynamodbav:"device_id"`
	Content    string `dynamodbav:"content"`
	CreatedBy  string `dynamodbav:"created_by,omitempty"`
	RemarkType string `dynamodbav:"remark_type,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

type RemarkDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRemarkRepository = (*RemarkDynamoRepository)(nil)

func NewRemarkDynamoRepository(ddb DynamoAPI, tableName string) *RemarkDynamoRepository {
	return &RemarkDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultRemarksTableName)}
}

func (r *RemarkDynamoRepository) Create(ctx context.Context, rm entities.Remark) (entities.Remark, error) {
	it := remarkItem{
		ID:         rm.ID,
		DeviceID:   rm.DeviceID,
		Content:    rm.Content,
		CreatedBy:  rm.CreatedBy,
		RemarkType: rm.RemarkType,
		CreatedAt:  formatTime(rm.CreatedAt),
	}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.Remark{}, err
	}
	return rm, nil
}

func (r *RemarkDynamoRepository) ListByDeviceID(ctx context.Context, deviceID string) ([]entities.Remark, error) {
	items, err := queryByDeviceID[remarkItem](ctx, r.ddb, r.tableName, deviceID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Remark, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Remark{
			ID:         it.ID,
			DeviceID:   it.DeviceID,
			Content:    it.Content,
			CreatedBy:  it.CreatedBy,
			RemarkType: it.RemarkType,
			CreatedAt:  parseTime(it.CreatedAt),
		})
	}
	return out, nil
}
