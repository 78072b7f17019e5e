package contract

import (
	"context"

	"penai-be/internal/entity"
)

type ChatInteractionRepository interface {
	Create(ctx context.Context, interaction *entity.ChatInteraction) error
	FindBySessionID(ctx context.Context, sessionID string) ([]*entity.ChatInteraction, error)
	FindByFamilyID(ctx context.Context, familyID string, limit int) ([]*entity.ChatInteraction, error)
}
