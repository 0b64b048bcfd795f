package dynamoregistry

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/notifique/alert/internal"
	"github.com/notifique/alert/internal/alert"
	"github.com/notifique/alert/internal/registry"
)

const (
	AlertsTable   = "Alerts"
	AlertsHashKey = "id"
	AlertWhenAttr = "when"
	AlertSentAttr = "isSent"
	AlertSentAt   = "sentAt"
)

// Alert keeps the schedule as unix nanoseconds so the pending filter
// can compare numbers instead of formatted dates.
type Alert struct {
	Id        string `dynamodbav:"id"`
	UserId    string `dynamodbav:"userId"`
	AlertType string `dynamodbav:"alertType"`
	Backend   string `dynamodbav:"backend"`
	Title     string `dynamodbav:"title"`
	Body      string `dynamodbav:"body"`
	When      int64  `dynamodbav:"when"`
	IsSent    bool   `dynamodbav:"isSent"`
	SentAt    *int64 `dynamodbav:"sentAt,omitempty"`
}

func (a Alert) GetKey() (DynamoKey, error) {
	key := make(DynamoKey)

	alertId, err := attributevalue.Marshal(a.Id)

	if err != nil {
		return key, fmt.Errorf("failed to make alert key - %w", err)
	}

	key[AlertsHashKey] = alertId

	return key, nil
}

func (a *Alert) toAlert() alert.Alert {
	converted := alert.Alert{
		ID:        a.Id,
		UserID:    a.UserId,
		AlertType: alert.AlertTypeID(a.AlertType),
		Backend:   alert.BackendID(a.Backend),
		Title:     a.Title,
		Body:      a.Body,
		When:      time.Unix(0, a.When).UTC(),
		IsSent:    a.IsSent,
	}

	if a.SentAt != nil {
		sentAt := time.Unix(0, *a.SentAt).UTC()
		converted.SentAt = &sentAt
	}

	return converted
}

func (s *Registry) CreateAlerts(ctx context.Context, alerts []alert.Alert) ([]alert.Alert, error) {

	if err := alert.CheckSchedules(alerts); err != nil {
		return nil, err
	}

	created := make([]alert.Alert, 0, len(alerts))
	stored := make([]Alert, 0, len(alerts))

	for _, a := range alerts {
		id, err := uuid.NewV7()

		if err != nil {
			return nil, fmt.Errorf("failed to generate uuid - %w", err)
		}

		a.ID = id.String()
		a.When = a.When.UTC()
		a.IsSent = false
		a.SentAt = nil

		created = append(created, a)
		stored = append(stored, Alert{
			Id:        a.ID,
			UserId:    a.UserID,
			AlertType: string(a.AlertType),
			Backend:   string(a.Backend),
			Title:     a.Title,
			Body:      a.Body,
			When:      a.When.UnixNano(),
		})
	}

	err := batchWrite(ctx, s.client, AlertsTable, stored)

	if err != nil {
		return nil, fmt.Errorf("failed to store alerts - %w", err)
	}

	return created, nil
}

func (s *Registry) GetPendingAlerts(ctx context.Context, now time.Time) ([]alert.Alert, error) {

	filter := expression.And(
		expression.Name(AlertSentAttr).Equal(expression.Value(false)),
		expression.Name(AlertWhenAttr).LessThanEqual(expression.Value(alert.ClampSchedule(now).UnixNano())),
	)

	expr, err := expression.NewBuilder().WithFilter(filter).Build()

	if err != nil {
		return nil, fmt.Errorf("failed to build pending alerts filter - %w", err)
	}

	pending := []alert.Alert{}

	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		resp, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(AlertsTable),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastEvaluatedKey,
		})

		if err != nil {
			return nil, fmt.Errorf("failed to scan alerts - %w", err)
		}

		stored := []Alert{}
		err = attributevalue.UnmarshalListOfMaps(resp.Items, &stored)

		if err != nil {
			return nil, fmt.Errorf("failed to unmarshall alerts - %w", err)
		}

		for _, a := range stored {
			pending = append(pending, a.toAlert())
		}

		if len(resp.LastEvaluatedKey) == 0 {
			break
		}

		lastEvaluatedKey = resp.LastEvaluatedKey
	}

	slices.SortFunc(pending, func(a, b alert.Alert) int {
		if c := a.When.Compare(b.When); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return pending, nil
}

func (s *Registry) MarkSent(ctx context.Context, id string, sentAt time.Time) error {

	update := expression.
		Set(expression.Name(AlertSentAttr), expression.Value(true)).
		Set(expression.Name(AlertSentAt), expression.Value(sentAt.UnixNano()))

	condEx := expression.AttributeExists(expression.Name(AlertsHashKey))
	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(condEx).Build()

	if err != nil {
		return fmt.Errorf("failed to make update query - %w", err)
	}

	key, err := Alert{Id: id}.GetKey()

	if err != nil {
		return err
	}

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(AlertsTable),
		Key:                       key,
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
	})

	if err != nil {
		target := &types.ConditionalCheckFailedException{}
		if errors.As(err, &target) {
			return internal.EntityNotFound{
				Id:   id,
				Type: registry.AlertType,
			}
		}
		return fmt.Errorf("failed to mark alert as sent - %w", err)
	}

	return nil
}
