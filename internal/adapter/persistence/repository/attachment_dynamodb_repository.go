package repository

import (
	"context"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAttachmentsTableName = "device_attachments"

type attachmentItem struct {
	ID         string `dynamodbav:"id"`
	DeviceID   string `dynamodbav:"device_id"`
	FileName   string `dynamodbav:"file_name"`
	FileURL    string `dynamodbav:"file_url"`
	Type       string `dynamodbav:"type"`
	UploadedBy string `dynamodbav:"uploaded_by,omitempty"`
	UploadedAt string `dynamodbav:"uploaded_at"`
}

type AttachmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAttachmentRepository = (*AttachmentDynamoRepository)(nil)

func NewAttachmentDynamoRepository(ddb DynamoAPI, tableName string) *AttachmentDynamoRepository {
	return &AttachmentDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultAttachmentsTableName)}
}

func (r *AttachmentDynamoRepository) Create(ctx context.Context, a entities.Attachment) (entities.Attachment, error) {
	it := attachmentItem{
		ID:         a.ID,
		DeviceID:   a.DeviceID,
		FileName:   a.FileName,
		FileURL:    a.FileURL,
		Type:       a.Type,
		UploadedBy: a.UploadedBy,
		UploadedAt: formatTime(a.UploadedAt),
	}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.Attachment{}, err
	}
	return a, nil
}

func (r *AttachmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Attachment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Attachment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Attachment{}, nil
	}

	var it attachmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Attachment{}, err
	}
	return fromAttachmentItem(it), nil
}

// Delete is idempotent; deleting a missing row succeeds.
func (r *AttachmentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey(id),
	})
	return err
}

func (r *AttachmentDynamoRepository) ListByDeviceID(ctx context.Context, deviceID string) ([]entities.Attachment, error) {
	items, err := queryByDeviceID[attachmentItem](ctx, r.ddb, r.tableName, deviceID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Attachment, 0, len(items))
	for _, it := range items {
		out = append(out, fromAttachmentItem(it))
	}
	return out, nil
}

func fromAttachmentItem(it attachmentItem) entities.Attachment {
	return entities.Attachment{
		ID:         it.ID,
		DeviceID:   it.DeviceID,
		FileName:   it.FileName,
		FileURL:    it.FileURL,
		Type:       it.Type,
		UploadedBy: it.UploadedBy,
		UploadedAt: parseTime(it.UploadedAt),
	}
}
