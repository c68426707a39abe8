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

const defaultOrdersTableName = "orders"

type orderItemRecord struct {
	ID        string `dynamodbav:"id"`
	Status    string `dynamodbav:"status"`
	Payload   string `dynamodbav:"payload"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// OrderDynamoRepository persists order snapshots in DynamoDB. Status is
// stored both as a top-level attribute and inside the payload; UpdateStatus
// rewrites both so the payload stays authoritative.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (epoch seconds)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		now:       time.Now,
	}
}

func (r *OrderDynamoRepository) Save(ctx context.Context, order entities.Order, ttl time.Duration) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(orderItemRecord{
		ID:        order.ID,
		Status:    string(order.Status),
		Payload:   string(payload),
		ExpiresAt: r.now().Add(ttl).Unix(),
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

func (r *OrderDynamoRepository) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	if err := json.Unmarshal([]byte(it.Payload), &order); err != nil {
		return entities.Order{}, err
	}
	order.Status = entities.OrderStatus(it.Status)
	return order, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	order, err := r.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ID == "" {
		return nil
	}
	order.Status = status

	payload, err := json.Marshal(order)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		UpdateExpression: aws.String("SET #status = :status, payload = :payload"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(status)},
			":payload": &types.AttributeValueMemberS{Value: string(payload)},
		},
	})
	return err
}
