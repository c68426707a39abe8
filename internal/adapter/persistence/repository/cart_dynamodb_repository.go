package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
	"github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCartsTableName = "carts"

type cartItemRecord struct {
	CustomerID string `dynamodbav:"customer_id"`
	Payload    string `dynamodbav:"payload"`
	ExpiresAt  int64  `dynamodbav:"expires_at"`
}

// CartDynamoRepository persists carts in DynamoDB.
//
// Table requirements:
//   - PK: customer_id (string)
//   - TTL attribute: expires_at (epoch seconds)

type CartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb *dynamodb.Client) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
		now:       time.Now,
	}
}

func (r *CartDynamoRepository) Get(ctx context.Context, customerID string) (entities.Cart, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{}, false, nil
	}

	var it cartItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cart{}, false, err
	}
	if it.ExpiresAt > 0 && r.now().Unix() >= it.ExpiresAt {
		return entities.Cart{}, false, nil
	}

	var cart entities.Cart
	if err := json.Unmarshal([]byte(it.Payload), &cart); err != nil {
		return entities.Cart{}, false, err
	}
	return cart, true, nil
}

func (r *CartDynamoRepository) Save(ctx context.Context, customerID string, cart entities.Cart, ttl time.Duration) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(cartItemRecord{
		CustomerID: customerID,
		Payload:    string(payload),
		ExpiresAt:  r.now().Add(ttl).Unix(),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *CartDynamoRepository) Delete(ctx context.Context, customerID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	return err
}
