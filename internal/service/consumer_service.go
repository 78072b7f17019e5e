package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"penai-be/internal/dto"
	"penai-be/internal/entity"
	"penai-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const logFieldLimit = 500

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	interactions contract.ChatInteractionRepository
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	interactions contract.ChatInteractionRepository,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		interactions: interactions,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.LogInteractionMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal interaction message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	metadata, err := json.Marshal(map[string]interface{}{
		"source":      payload.Source,
		"topic":       payload.Topic,
		"sentiment":   payload.Sentiment,
		"session_id":  payload.SessionID,
		"high_intent": payload.HighIntent,
	})
	if err != nil {
		log.Printf("[ERROR] Failed to build interaction metadata: %v", err)
		msg.Ack()
		return
	}

	askedAt := payload.AskedAt
	if askedAt.IsZero() {
		askedAt = time.Now()
	}

	row := entity.ChatInteraction{
		Id:        uuid.New(),
		FamilyID:  payload.FamilyID,
		SessionID: payload.SessionID,
		Question:  truncateField(payload.Question),
		Answer:    truncateField(payload.Answer),
		Topic:     payload.Topic,
		Sentiment: payload.Sentiment,
		Source:    payload.Source,
		Metadata:  datatypes.JSON(metadata),
		CreatedAt: askedAt,
	}

	if err := cs.interactions.Create(ctx, &row); err != nil {
		log.Printf("[ERROR] Failed to log interaction for family %s: %v", payload.FamilyID, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}

func truncateField(s string) string {
	if len(s) > logFieldLimit {
		return s[:logFieldLimit]
	}
	return s
}
