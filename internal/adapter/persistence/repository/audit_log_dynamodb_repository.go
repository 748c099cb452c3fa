package repository

import (
	"context"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAuditLogsTableName = "audit_logs"
	auditEntityIndex          = "entity_id-index"
)

type auditLogItem struct {
	ID         string         `dynamodbav:"id"`
	EntityType string         `dynamodbav:"entity_type"`
	EntityID   string         `dynamodbav:"entity_id"`
	Action     string         `dynamodbav:"action"`
	UserID     string         `dynamodbav:"user_id,omitempty"`
	Details    map[string]any `dynamodbav:"details,omitempty"`
	Timestamp  string         `dynamodbav:"timestamp"`
}

// AuditLogDynamoRepository stores audit entries for any entity type.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: entity_id-index (PK: entity_id)

type AuditLogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb DynamoAPI, tableName string) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultAuditLogsTableName)}
}

func (r *AuditLogDynamoRepository) Create(ctx context.Context, a entities.AuditLog) (entities.AuditLog, error) {
	it := auditLogItem{
		ID:         a.ID,
		EntityType: a.EntityType,
		EntityID:   a.EntityID,
		Action:     a.Action,
		UserID:     a.UserID,
		Details:    a.Details,
		Timestamp:  formatTime(a.Timestamp),
	}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.AuditLog{}, err
	}
	return a, nil
}

func (r *AuditLogDynamoRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]entities.AuditLog, error) {
	items, err := queryAll[auditLogItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(auditEntityIndex),
		KeyConditionExpression: aws.String("#eid = :eid"),
		FilterExpression:       aws.String("#etype = :etype"),
		ExpressionAttributeNames: map[string]string{
			"#eid":   "entity_id",
			"#etype": "entity_type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid":   &types.AttributeValueMemberS{Value: entityID},
			":etype": &types.AttributeValueMemberS{Value: entityType},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.AuditLog, 0, len(items))
	for _, it := range items {
		out = append(out, entities.AuditLog{
			ID:         it.ID,
			EntityType: it.EntityType,
			EntityID:   it.EntityID,
			Action:     it.Action,
			UserID:     it.UserID,
			Details:    it.Details,
			Timestamp:  parseTime(it.Timestamp),
		})
	}
	return out, nil
}
