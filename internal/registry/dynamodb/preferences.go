package dynamoregistry

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/notifique/alert/internal/alert"
	"github.com/notifique/alert/internal/registry"
)

const (
	PreferencesTable   = "AlertPreferences"
	PreferencesHashKey = "userId"
	PreferencesSortKey = "prefKey"
)

type Preference struct {
	UserId  string `dynamodbav:"userId"`
	PrefKey string `dynamodbav:"prefKey"`
	Enabled bool   `dynamodbav:"enabled"`
}

func (p *Preference) GetKey() (DynamoKey, error) {
	key := make(DynamoKey)

	userId, err := attributevalue.Marshal(p.UserId)

	if err != nil {
		return key, fmt.Errorf("failed to marshall preference userId - %w", err)
	}

	prefKey, err := attributevalue.Marshal(p.PrefKey)

	if err != nil {
		return key, fmt.Errorf("failed to marshall preference key - %w", err)
	}

	key[PreferencesHashKey] = userId
	key[PreferencesSortKey] = prefKey

	return key, nil
}

func (p *Preference) toAlert() (alert.Preference, error) {
	alertType, backend, err := registry.SplitPrefKey(p.PrefKey)

	if err != nil {
		return alert.Preference{}, err
	}

	return alert.Preference{
		UserID:    p.UserId,
		AlertType: alert.AlertTypeID(alertType),
		Backend:   alert.BackendID(backend),
		Enabled:   p.Enabled,
	}, nil
}

func newPreference(userId string, alertType alert.AlertTypeID, backend alert.BackendID) Preference {
	return Preference{
		UserId:  userId,
		PrefKey: registry.PrefKey(string(alertType), string(backend)),
	}
}

func (s *Registry) queryPreferences(ctx context.Context, keyCond expression.KeyConditionBuilder) ([]alert.Preference, error) {

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()

	if err != nil {
		return nil, fmt.Errorf("failed to build preferences query - %w", err)
	}

	prefs := []alert.Preference{}

	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		resp, err := s.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(PreferencesTable),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastEvaluatedKey,
		})

		if err != nil {
			return nil, fmt.Errorf("failed to query preferences - %w", err)
		}

		stored := []Preference{}
		err = attributevalue.UnmarshalListOfMaps(resp.Items, &stored)

		if err != nil {
			return nil, fmt.Errorf("failed to unmarshall preferences - %w", err)
		}

		for _, p := range stored {
			pref, err := p.toAlert()

			if err != nil {
				return nil, fmt.Errorf("failed to decode preference - %w", err)
			}

			prefs = append(prefs, pref)
		}

		if len(resp.LastEvaluatedKey) == 0 {
			break
		}

		lastEvaluatedKey = resp.LastEvaluatedKey
	}

	return prefs, nil
}

func (s *Registry) GetUserPreferences(ctx context.Context, userId string) ([]alert.Preference, error) {
	keyCond := expression.Key(PreferencesHashKey).Equal(expression.Value(userId))
	return s.queryPreferences(ctx, keyCond)
}

func (s *Registry) GetAlertTypePreferences(ctx context.Context, alertType alert.AlertTypeID, userIds []string) ([]alert.Preference, error) {

	prefs := []alert.Preference{}
	prefix := registry.PrefKeyPrefix(string(alertType))

	for _, userId := range userIds {
		keyCond := expression.KeyAnd(
			expression.Key(PreferencesHashKey).Equal(expression.Value(userId)),
			expression.Key(PreferencesSortKey).BeginsWith(prefix),
		)

		userPrefs, err := s.queryPreferences(ctx, keyCond)

		if err != nil {
			return nil, fmt.Errorf("failed to get preferences of user %s - %w", userId, err)
		}

		prefs = append(prefs, userPrefs...)
	}

	return prefs, nil
}

func (s *Registry) SetPreference(ctx context.Context, pref alert.Preference) error {

	stored := newPreference(pref.UserID, pref.AlertType, pref.Backend)
	stored.Enabled = pref.Enabled

	item, err := attributevalue.MarshalMap(stored)

	if err != nil {
		return fmt.Errorf("failed to marshall preference - %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(PreferencesTable),
		Item:      item,
	})

	if err != nil {
		return fmt.Errorf("failed to store preference - %w", err)
	}

	return nil
}

func (s *Registry) DeletePreference(ctx context.Context, userId string, alertType alert.AlertTypeID, backend alert.BackendID) error {

	stored := newPreference(userId, alertType, backend)
	key, err := stored.GetKey()

	if err != nil {
		return err
	}

	_, err = s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(PreferencesTable),
		Key:       key,
	})

	if err != nil {
		return fmt.Errorf("failed to delete preference - %w", err)
	}

	return nil
}
