package repository

import (
	"context"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"
)

const defaultRatingsTableName = "device_ratings"

type ratingItem struct {
	ID           string `dynamodbav:"id"`
	DeviceID     string `dynamodbav:"device_id"`
	TechnicianID string `dynamodbav:"technician_id,omitempty"`
	Score        int    `dynamodbav:"score"`
	Comment      string `dynamodbav:"comment,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// RatingDynamoRepository is read-only; ratings are written by the customer portal.
type RatingDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRatingRepository = (*RatingDynamoRepository)(nil)

func NewRatingDynamoRepository(ddb DynamoAPI, tableName string) *RatingDynamoRepository {
	return &RatingDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultRatingsTableName)}
}

func (r *RatingDynamoRepository) ListByDeviceID(ctx context.Context, deviceID string) ([]entities.Rating, error) {
	items, err := queryByDeviceID[ratingItem](ctx, r.ddb, r.tableName, deviceID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Rating, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Rating{
			ID:           it.ID,
			DeviceID:     it.DeviceID,
			TechnicianID: it.TechnicianID,
			Score:        it.Score,
			Comment:      it.Comment,
			CreatedAt:    parseTime(it.CreatedAt),
		})
	}
	return out, nil
}
