package implementation

import (
	"context"

	"penai-be/internal/entity"
	"penai-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ChatInteractionRepositoryImpl struct {
	db *gorm.DB
}

func NewChatInteractionRepository(db *gorm.DB) contract.ChatInteractionRepository {
	return &ChatInteractionRepositoryImpl{db: db}
}

func (r *ChatInteractionRepositoryImpl) Create(ctx context.Context, interaction *entity.ChatInteraction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

func (r *ChatInteractionRepositoryImpl) FindBySessionID(ctx context.Context, sessionID string) ([]*entity.ChatInteraction, error) {
	var rows []*entity.ChatInteraction
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ChatInteractionRepositoryImpl) FindByFamilyID(ctx context.Context, familyID string, limit int) ([]*entity.ChatInteraction, error) {
	var rows []*entity.ChatInteraction
	query := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
