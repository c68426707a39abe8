package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDedupTableName = "processed_events"

// DedupDynamoRepository backs the duplicate-delivery guard with a conditional
// put: the first writer of an event id wins, every later writer observes the
// condition failure and reports the event as already seen.
//
// Table requirements:
//   - PK: event_id (string)
//   - TTL attribute: expires_at (epoch seconds)

type DedupDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	now       func() time.Time
}

var _ interfaces.IDedupRepository = (*DedupDynamoRepository)(nil)

func NewDedupDynamoRepository(ddb *dynamodb.Client) *DedupDynamoRepository {
	return &DedupDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEDUP_TABLE", defaultDedupTableName),
		now:       time.Now,
	}
}

func (r *DedupDynamoRepository) Seen(ctx context.Context, eventID string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"event_id": &types.AttributeValueMemberS{Value: eventID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *DedupDynamoRepository) Mark(ctx context.Context, eventID string, receivedAt time.Time, ttl time.Duration) (bool, error) {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"event_id":    &types.AttributeValueMemberS{Value: eventID},
			"received_at": &types.AttributeValueMemberS{Value: receivedAt.UTC().Format(time.RFC3339Nano)},
			"expires_at":  &types.AttributeValueMemberN{Value: strconv.FormatInt(r.now().Add(ttl).Unix(), 10)},
		},
		ConditionExpression: aws.String("attribute_not_exists(event_id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}
