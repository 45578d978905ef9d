package dynamodb

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
	"go.uber.org/zap"

	"lucidlog-backend/application/ports"
	"lucidlog-backend/domain/core/entities"
	apperrors "lucidlog-backend/pkg/errors"
)

// PatternRepository persists detected patterns in DynamoDB, keyed by
// (user, type, name) so an analysis run upserts in place instead of
// accumulating duplicates.
type PatternRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewPatternRepository creates a new PatternRepository
func NewPatternRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.PatternRepository {
	return &PatternRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// patternItem represents the DynamoDB item structure for a pattern
type patternItem struct {
	PK              string               `dynamodbav:"PK"`
	SK              string               `dynamodbav:"SK"`
	EntityType      string               `dynamodbav:"EntityType"`
	UserID          string               `dynamodbav:"UserID"`
	PatternType     string               `dynamodbav:"PatternType"`
	Name            string               `dynamodbav:"Name"`
	Description     string               `dynamodbav:"Description"`
	Frequency       int                  `dynamodbav:"Frequency"`
	Confidence      float64              `dynamodbav:"Confidence"`
	RelatedSymbols  []string             `dynamodbav:"RelatedSymbols,omitempty"`
	RelatedEmotions []string             `dynamodbav:"RelatedEmotions,omitempty"`
	RelatedThemes   []string             `dynamodbav:"RelatedThemes,omitempty"`
	TimeRangeDays   int                  `dynamodbav:"TimeRangeDays"`
	FirstOccurrence string               `dynamodbav:"FirstOccurrence"`
	LastOccurrence  string               `dynamodbav:"LastOccurrence"`
	Correlation     entities.Correlation `dynamodbav:"Correlation"`
	Insight         string               `dynamodbav:"Insight"`
	IsActive        bool                 `dynamodbav:"IsActive"`
	UpdatedAt       string               `dynamodbav:"UpdatedAt"`
}

// Upsert writes a pattern in place: the same (user, type, name) key
// updates the existing record, a new key inserts one. Patterns are never
// deleted here and the active flag is left alone so a recompute cannot
// silently reactivate what the user dismissed.
func (r *PatternRepository) Upsert(ctx context.Context, pattern *entities.Pattern) error {
	update := expression.
		Set(expression.Name("EntityType"), expression.Value("PATTERN")).
		Set(expression.Name("UserID"), expression.Value(pattern.UserID())).
		Set(expression.Name("PatternType"), expression.Value(string(pattern.Type()))).
		Set(expression.Name("Name"), expression.Value(pattern.Name())).
		Set(expression.Name("Description"), expression.Value(pattern.Description())).
		Set(expression.Name("Frequency"), expression.Value(pattern.Frequency())).
		Set(expression.Name("Confidence"), expression.Value(pattern.Confidence())).
		Set(expression.Name("RelatedSymbols"), expression.Value(pattern.RelatedSymbols())).
		Set(expression.Name("RelatedEmotions"), expression.Value(pattern.RelatedEmotions())).
		Set(expression.Name("RelatedThemes"), expression.Value(pattern.RelatedThemes())).
		Set(expression.Name("TimeRangeDays"), expression.Value(pattern.TimeRangeDays())).
		Set(expression.Name("FirstOccurrence"), expression.Value(pattern.FirstOccurrence().UTC().Format(time.RFC3339))).
		Set(expression.Name("LastOccurrence"), expression.Value(pattern.LastOccurrence().UTC().Format(time.RFC3339))).
		Set(expression.Name("Correlation"), expression.Value(pattern.Correlation())).
		Set(expression.Name("Insight"), expression.Value(pattern.Insight())).
		Set(expression.Name("UpdatedAt"), expression.Value(time.Now().UTC().Format(time.RFC3339))).
		Set(expression.Name("IsActive"), expression.IfNotExists(expression.Name("IsActive"), expression.Value(true)))

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return fmt.Errorf("failed to build pattern upsert expression: %w", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       patternKey(pattern.UserID(), pattern.Type(), pattern.Name()),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		r.logger.Error("Failed to upsert pattern",
			zap.String("userID", pattern.UserID()),
			zap.String("type", string(pattern.Type())),
			zap.String("name", pattern.Name()),
			zap.Error(err),
		)
		return fmt.Errorf("failed to upsert pattern: %w", err)
	}

	return nil
}

// FindActiveByUser returns the user's active patterns
func (r *PatternRepository) FindActiveByUser(ctx context.Context, userID string) ([]*entities.Pattern, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(patternPK(userID))).
		And(expression.Key("SK").BeginsWith("PATTERN#"))
	filter := expression.Name("IsActive").Equal(expression.Value(true))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build pattern query expression: %w", err)
	}

	var patterns []*entities.Pattern
	var lastKey map[string]types.AttributeValue

	for {
		output, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			r.logger.Error("Failed to query patterns",
				zap.String("userID", userID),
				zap.Error(err),
			)
			return nil, fmt.Errorf("failed to query patterns: %w", err)
		}

		for _, raw := range output.Items {
			var item patternItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				r.logger.Warn("Skipping unreadable pattern item", zap.Error(err))
				continue
			}
			pattern, err := item.toEntity()
			if err != nil {
				r.logger.Warn("Skipping invalid pattern item",
					zap.String("name", item.Name),
					zap.Error(err),
				)
				continue
			}
			patterns = append(patterns, pattern)
		}

		if output.LastEvaluatedKey == nil {
			break
		}
		lastKey = output.LastEvaluatedKey
	}

	return patterns, nil
}

// Deactivate flips a pattern's active flag. Fails if the record does not
// exist: deactivating nothing is a caller mistake worth surfacing.
func (r *PatternRepository) Deactivate(ctx context.Context, userID string, patternType entities.PatternType, name string) error {
	update := expression.Set(expression.Name("IsActive"), expression.Value(false)).
		Set(expression.Name("UpdatedAt"), expression.Value(time.Now().UTC().Format(time.RFC3339)))
	cond := expression.AttributeExists(expression.Name("PK"))

	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("failed to build deactivate expression: %w", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       patternKey(userID, patternType, name),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return apperrors.NewNotFoundError(fmt.Sprintf("pattern %s/%s", patternType, name))
		}
		return fmt.Errorf("failed to deactivate pattern: %w", err)
	}

	return nil
}

func (i patternItem) toEntity() (*entities.Pattern, error) {
	patternType, err := entities.ParsePatternType(i.PatternType)
	if err != nil {
		return nil, err
	}
	first, err := time.Parse(time.RFC3339, i.FirstOccurrence)
	if err != nil {
		return nil, fmt.Errorf("invalid first occurrence %q: %w", i.FirstOccurrence, err)
	}
	last, err := time.Parse(time.RFC3339, i.LastOccurrence)
	if err != nil {
		return nil, fmt.Errorf("invalid last occurrence %q: %w", i.LastOccurrence, err)
	}

	return entities.ReconstructPattern(
		i.UserID,
		patternType,
		i.Name,
		i.Description,
		i.Frequency,
		i.Confidence,
		i.RelatedSymbols,
		i.RelatedEmotions,
		i.RelatedThemes,
		i.TimeRangeDays,
		first,
		last,
		i.Correlation,
		i.Insight,
		i.IsActive,
	)
}

func patternPK(userID string) string {
	return fmt.Sprintf("USER#%s", userID)
}

func patternSK(patternType entities.PatternType, name string) string {
	return fmt.Sprintf("PATTERN#%s#%s", patternType, name)
}

func patternKey(userID string, patternType entities.PatternType, name string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: patternPK(userID)},
		"SK": &types.AttributeValueMemberS{Value: patternSK(patternType, name)},
	}
}
