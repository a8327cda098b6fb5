package service

import (
	"context"
	"encoding/json"

	"bookshelf-be/internal/pkg/logger"
	"bookshelf-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	logger     logger.ILogger
}

func NewConsumerService(subscriber message.Subscriber, log logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		logger:     log,
	}
}

// Consume drains catalog change events and logs them. Runs until the
// context is cancelled.
func (s *consumerService) Consume(ctx context.Context) error {
	authorMsgs, err := s.subscriber.Subscribe(ctx, events.TopicAuthorChanged)
	if err != nil {
		return err
	}

	bookMsgs, err := s.subscriber.Subscribe(ctx, events.TopicBookChanged)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-authorMsgs:
			if !ok {
				return nil
			}
			s.handle(events.TopicAuthorChanged, msg)
		case msg, ok := <-bookMsgs:
			if !ok {
				return nil
			}
			s.handle(events.TopicBookChanged, msg)
		}
	}
}

func (s *consumerService) handle(topic string, msg *message.Message) {
	defer msg.Ack()

	var event events.ChangeEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		s.logger.Warn("consumer", "dropping malformed change event", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
		return
	}

	s.logger.Info("consumer", "catalog changed", map[string]interface{}{
		"topic":  topic,
		"entity": event.Entity,
		"action": event.Action,
		"id":     event.Id,
		"rows":   event.Rows,
	})
}
