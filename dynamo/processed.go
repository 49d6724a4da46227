package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/guemper-znacht/event-registration/registration"
)

var _ registration.ProcessedMarker = &DB{}

type processedMarkerDynamo struct {
	PK              string
	SK              string
	PaymentIntentID string
	RowsSaved       int
	ProcessedAt     time.Time
}

const processedEntityName = "PROCESSED"

func processedPK(intentID string) string {
	return fmt.Sprintf("INTENT#%s", intentID)
}

func processedSK() string {
	return processedEntityName
}

// MarkProcessed writes the marker with a conditional put, so exactly
// one invocation per intent ID can win.
func (d *DB) MarkProcessed(ctx context.Context, intentID string, rowCount int) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	item, err := attributevalue.MarshalMap(processedMarkerDynamo{
		PK:              processedPK(intentID),
		SK:              processedSK(),
		PaymentIntentID: intentID,
		RowsSaved:       rowCount,
		ProcessedAt:     time.Now(),
	})
	if err != nil {
		return registration.NewFailedToWriteError("Failed to translate processed marker to dynamo model", err)
	}

	expr := exprMustBuild(expression.NewBuilder().WithCondition(newEntityConditional()))

	_, err = d.dynamoClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(d.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condFailedErr) {
			return registration.NewAlreadyProcessedError(fmt.Sprintf("Intent %q is already marked processed", intentID), err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return registration.NewTimeoutError("MarkProcessed timed out")
		}
		return registration.NewFailedToWriteError("Failed PutItem call", err)
	}

	return nil
}

// UnmarkProcessed removes the marker so a failed append can be retried
// by a later invocation.
func (d *DB) UnmarkProcessed(ctx context.Context, intentID string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	_, err := d.dynamoClient.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: processedPK(intentID)},
			"SK": &types.AttributeValueMemberS{Value: processedSK()},
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return registration.NewTimeoutError("UnmarkProcessed timed out")
		}
		return registration.NewFailedToWriteError("Failed DeleteItem call", err)
	}

	return nil
}

// GetProcessed reports whether a marker exists for the intent, and the
// row count it recorded.
func (d *DB) GetProcessed(ctx context.Context, intentID string) (int, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: processedPK(intentID)},
			"SK": &types.AttributeValueMemberS{Value: processedSK()},
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, false, registration.NewTimeoutError("GetProcessed timed out")
		}
		return 0, false, registration.NewFailedToFetchError(fmt.Sprintf("Failed to fetch processed marker for intent %q", intentID), err)
	}

	if len(resp.Item) == 0 {
		return 0, false, nil
	}

	var marker processedMarkerDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &marker)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal processed marker from dynamo: %s", err))
	}

	return marker.RowsSaved, true, nil
}
