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

const defaultStatesTableName = "conversation_states"

type conversationStateItem struct {
	CustomerID string `dynamodbav:"customer_id"`
	Payload    string `dynamodbav:"payload"`
	ExpiresAt  int64  `dynamodbav:"expires_at"`
}

// ConversationStateDynamoRepository persists conversation states in DynamoDB.
//
// Table requirements:
//   - PK: customer_id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB TTL reaping is lazy, so expiry is also enforced on read.

type ConversationStateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

var _ interfaces.IConversationStateRepository = (*ConversationStateDynamoRepository)(nil)

func NewConversationStateDynamoRepository(ddb *dynamodb.Client) *ConversationStateDynamoRepository {
	return &ConversationStateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STATES_TABLE", defaultStatesTableName),
		now:       time.Now,
	}
}

func (r *ConversationStateDynamoRepository) Get(ctx context.Context, customerID string) (entities.ConversationState, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ConversationState{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.ConversationState{}, false, nil
	}

	var it conversationStateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ConversationState{}, false, err
	}
	if it.ExpiresAt > 0 && r.now().Unix() >= it.ExpiresAt {
		return entities.ConversationState{}, false, nil
	}

	var state entities.ConversationState
	if err := json.Unmarshal([]byte(it.Payload), &state); err != nil {
		return entities.ConversationState{}, false, err
	}
	return state, true, nil
}

func (r *ConversationStateDynamoRepository) Save(ctx context.Context, customerID string, state entities.ConversationState, ttl time.Duration) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(conversationStateItem{
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

func (r *ConversationStateDynamoRepository) Delete(ctx context.Context, customerID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	return err
}
