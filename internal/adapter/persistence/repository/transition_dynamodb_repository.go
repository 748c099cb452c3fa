package repository

import (
	"context"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"
)

const defaultTransitionsTableName = "device_transitions"

type transitionItem struct {
	ID          string `dynamodbav:"id"`
	DeviceID    string `dynamodbav:"device_id"`
	FromStatus  string `dynamodbav:"from_status,omitempty"`
	ToStatus    string `dynamodbav:"to_status"`
	PerformedBy string `dynamodbav:"performed_by,omitempty"`
	Signature   string `dynamodbav:"signature,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// TransitionDynamoRepository appends status transitions. Rows are never
// updated.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: device_id-index (PK: device_id)

type TransitionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITransitionRepository = (*TransitionDynamoRepository)(nil)

func NewTransitionDynamoRepository(ddb DynamoAPI, tableName string) *TransitionDynamoRepository {
	return &TransitionDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultTransitionsTableName)}
}

func (r *TransitionDynamoRepository) Create(ctx context.Context, t entities.Transition) (entities.Transition, error) {
	it := transitionItem{
		ID:          t.ID,
		DeviceID:    t.DeviceID,
		FromStatus:  string(t.FromStatus),
		ToStatus:    string(t.ToStatus),
		PerformedBy: t.PerformedBy,
		Signature:   t.Signature,
		CreatedAt:   formatTime(t.CreatedAt),
	}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.Transition{}, err
	}
	return t, nil
}

func (r *TransitionDynamoRepository) ListByDeviceID(ctx context.Context, deviceID string) ([]entities.Transition, error) {
	items, err := queryByDeviceID[transitionItem](ctx, r.ddb, r.tableName, deviceID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Transition, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Transition{
			ID:          it.ID,
			DeviceID:    it.DeviceID,
			FromStatus:  entities.DeviceStatus(it.FromStatus),
			ToStatus:    entities.DeviceStatus(it.ToStatus),
			PerformedBy: it.PerformedBy,
			Signature:   it.Signature,
			CreatedAt:   parseTime(it.CreatedAt),
		})
	}
	return out, nil
}
