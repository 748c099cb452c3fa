package repository

import (
	"context"

	"repair_desk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName = "users"
	batchGetLimit         = 100
)

type userItem struct {
	ID       string `dynamodbav:"id"`
	Username string `dynamodbav:"username"`
}

// UserDynamoDirectory resolves display names from the users table.
type UserDynamoDirectory struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IUserDirectory = (*UserDynamoDirectory)(nil)

func NewUserDynamoDirectory(ddb DynamoAPI, tableName string) *UserDynamoDirectory {
	return &UserDynamoDirectory{ddb: ddb, tableName: tableOrDefault(tableName, defaultUsersTableName)}
}

// ResolveUserNames issues BatchGetItem in chunks of 100 keys. Keys left
// unprocessed are retried once; anything still unprocessed is omitted.
func (d *UserDynamoDirectory) ResolveUserNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	for start := 0; start < len(ids); start += batchGetLimit {
		end := min(start+batchGetLimit, len(ids))
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, stringKey(id))
		}

		request := map[string]types.KeysAndAttributes{
			d.tableName: {
				Keys:                 keys,
				ProjectionExpression: aws.String("#id, #username"),
				ExpressionAttributeNames: map[string]string{
					"#id":       "id",
					"#username": "username",
				},
			},
		}
		for attempt := 0; attempt < 2 && len(request) > 0; attempt++ {
			out, err := d.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[d.tableName] {
				var it userItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				if it.ID != "" && it.Username != "" {
					names[it.ID] = it.Username
				}
			}
			request = out.UnprocessedKeys
		}
	}
	return names, nil
}
