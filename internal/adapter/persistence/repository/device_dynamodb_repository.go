package repository

import (
	"context"
	"errors"
	"time"

	"repair_desk/internal/domain/entities"
	"repair_desk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDevicesTableName = "devices"
	devicesSerialIndex      = "serial_number-index"
)

type deviceItem struct {
	ID                 string `dynamodbav:"id"`
	Brand              string `dynamodbav:"brand"`
	Model              string `dynamodbav:"model"`
	SerialNumber       string `dynamodbav:"serial_number,omitempty"`
	Status             string `dynamodbav:"status"`
	AssignedTo         string `dynamodbav:"assigned_to,omitempty"`
	CustomerID         string `dynamodbav:"customer_id"`
	ExpectedReturnDate string `dynamodbav:"expected_return_date,omitempty"`
	WarrantyStart      string `dynamodbav:"warranty_start,omitempty"`
	WarrantyEnd        string `dynamodbav:"warranty_end,omitempty"`
	WarrantyStatus     string `dynamodbav:"warranty_status,omitempty"`
	IssueDescription   string `dynamodbav:"issue_description,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// DeviceDynamoRepository reads devices and writes their status.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: serial_number-index (PK: serial_number)

type DeviceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDeviceRepository = (*DeviceDynamoRepository)(nil)

func NewDeviceDynamoRepository(ddb DynamoAPI, tableName string) *DeviceDynamoRepository {
	return &DeviceDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultDevicesTableName),
	}
}

func (r *DeviceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Device, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Device{}, err
	}
	if len(out.Item) == 0 {
		return entities.Device{}, nil
	}

	var it deviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Device{}, err
	}
	return fromDeviceItem(it), nil
}

func (r *DeviceDynamoRepository) ListBySerialNumber(ctx context.Context, serialNumber string) ([]entities.Device, error) {
	items, err := queryByIndex[deviceItem](ctx, r.ddb, r.tableName, devicesSerialIndex, "serial_number", serialNumber)
	if err != nil {
		return nil, err
	}
	devices := make([]entities.Device, 0, len(items))
	for _, it := range items {
		devices = append(devices, fromDeviceItem(it))
	}
	return devices, nil
}

// UpdateStatus is conditional on the row existing; a missing device reports
// false without error.
func (r *DeviceDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DeviceStatus) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func fromDeviceItem(it deviceItem) entities.Device {
	return entities.Device{
		ID:                 it.ID,
		Brand:              it.Brand,
		Model:              it.Model,
		SerialNumber:       it.SerialNumber,
		Status:             entities.DeviceStatus(it.Status),
		AssignedTo:         it.AssignedTo,
		CustomerID:         it.CustomerID,
		ExpectedReturnDate: parseTime(it.ExpectedReturnDate),
		WarrantyStart:      parseTime(it.WarrantyStart),
		WarrantyEnd:        parseTime(it.WarrantyEnd),
		WarrantyStatus:     it.WarrantyStatus,
		IssueDescription:   it.IssueDescription,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
