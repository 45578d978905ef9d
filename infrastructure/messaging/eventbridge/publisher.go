// Package eventbridge publishes domain events to an AWS EventBridge bus
// so downstream consumers (notifications, digests) can react to analysis
// runs without coupling to this service.
package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"

	"lucidlog-backend/application/ports"
	"lucidlog-backend/domain/events"
)

const eventSource = "lucidlog.analysis"

// Publisher implements ports.EventBus on top of EventBridge
type Publisher struct {
	client  *eventbridge.Client
	busName string
	logger  *zap.Logger
}

// NewPublisher creates a new EventBridge publisher
func NewPublisher(client *eventbridge.Client, busName string, logger *zap.Logger) ports.EventBus {
	return &Publisher{
		client:  client,
		busName: busName,
		logger:  logger,
	}
}

// Publish sends one domain event. DetailType carries the event type so
// rules can filter without parsing the detail payload.
func (p *Publisher) Publish(ctx context.Context, event events.DomainEvent) error {
	detail, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.GetEventType(), err)
	}

	output, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				EventBusName: aws.String(p.busName),
				Source:       aws.String(eventSource),
				DetailType:   aws.String(event.GetEventType()),
				Detail:       aws.String(string(detail)),
				Time:         aws.Time(event.GetTimestamp()),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.GetEventType(), err)
	}

	if output.FailedEntryCount > 0 {
		for _, entry := range output.Entries {
			if entry.ErrorCode != nil {
				p.logger.Warn("EventBridge entry rejected",
					zap.String("eventType", event.GetEventType()),
					zap.String("errorCode", aws.ToString(entry.ErrorCode)),
					zap.String("errorMessage", aws.ToString(entry.ErrorMessage)),
				)
			}
		}
		return fmt.Errorf("event %s rejected by bus %s", event.GetEventType(), p.busName)
	}

	return nil
}
