package dynamodb

import (
	"context"
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
	"lucidlog-backend/domain/core/valueobjects"
)

// EntryRepository reads journal entries from DynamoDB. It is strictly
// read-only here: entries are written by the journal service, this engine
// only fetches snapshots.
type EntryRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewEntryRepository creates a new EntryRepository
func NewEntryRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.EntryReader {
	return &EntryRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// entryItem represents the DynamoDB item structure for an entry.
// Sort keys embed the RFC3339 timestamp so a range query comes back in
// chronological order for free.
type entryItem struct {
	PK           string   `dynamodbav:"PK"`
	SK           string   `dynamodbav:"SK"`
	EntityType   string   `dynamodbav:"EntityType"`
	EntryID      string   `dynamodbav:"EntryID"`
	UserID       string   `dynamodbav:"UserID"`
	Timestamp    string   `dynamodbav:"Timestamp"`
	Title        string   `dynamodbav:"Title"`
	Narrative    string   `dynamodbav:"Narrative"`
	Symbols      []string `dynamodbav:"Symbols,omitempty"`
	Emotions     []string `dynamodbav:"Emotions,omitempty"`
	Themes       []string `dynamodbav:"Themes,omitempty"`
	Colors       []string `dynamodbav:"Colors,omitempty"`
	ContextTags  []string `dynamodbav:"ContextTags,omitempty"`
	SleepQuality int      `dynamodbav:"SleepQuality"`
	Lucidity     int      `dynamodbav:"Lucidity"`
	Vividness    int      `dynamodbav:"Vividness"`
}

// ListEntries returns the user's entries inside [start, end], chronological
// ascending. Guarantees the snapshot contract the analyzers depend on.
func (r *EntryRepository) ListEntries(ctx context.Context, userID string, start, end time.Time) ([]*entities.Entry, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(entryPK(userID))).
		And(expression.Key("SK").Between(
			expression.Value(entrySKPrefix(start)),
			expression.Value(entrySKPrefix(end)+"￿"),
		))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build entry query expression: %w", err)
	}

	var snapshot []*entities.Entry
	var lastKey map[string]types.AttributeValue

	for {
		input := &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ScanIndexForward:          aws.Bool(true), // chronological ascending
			ExclusiveStartKey:         lastKey,
		}

		output, err := r.client.Query(ctx, input)
		if err != nil {
			r.logger.Error("Failed to query entries",
				zap.String("userID", userID),
				zap.Error(err),
			)
			return nil, fmt.Errorf("failed to query entries: %w", err)
		}

		for _, raw := range output.Items {
			var item entryItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				r.logger.Warn("Skipping unreadable entry item", zap.Error(err))
				continue
			}
			entry, err := item.toEntity()
			if err != nil {
				r.logger.Warn("Skipping invalid entry item",
					zap.String("entryID", item.EntryID),
					zap.Error(err),
				)
				continue
			}
			snapshot = append(snapshot, entry)
		}

		if output.LastEvaluatedKey == nil {
			break
		}
		lastKey = output.LastEvaluatedKey
	}

	return snapshot, nil
}

func (i entryItem) toEntity() (*entities.Entry, error) {
	id, err := valueobjects.NewEntryIDFromString(i.EntryID)
	if err != nil {
		return nil, err
	}
	timestamp, err := time.Parse(time.RFC3339, i.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("invalid entry timestamp %q: %w", i.Timestamp, err)
	}
	return entities.ReconstructEntry(
		id,
		i.UserID,
		timestamp,
		i.Title,
		i.Narrative,
		i.Symbols,
		i.Emotions,
		i.Themes,
		i.Colors,
		i.ContextTags,
		valueobjects.NewQualityMetrics(i.SleepQuality, i.Lucidity, i.Vividness),
	)
}

func entryPK(userID string) string {
	return fmt.Sprintf("USER#%s", userID)
}

func entrySKPrefix(t time.Time) string {
	return fmt.Sprintf("ENTRY#%s", t.UTC().Format(time.RFC3339))
}
