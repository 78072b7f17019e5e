package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatInteraction is one resolved question/answer pair, logged for the
// admissions dashboard. Question and answer are truncated at write time.
type ChatInteraction struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FamilyID  string    `gorm:"index;column:family_id"`
	SessionID string    `gorm:"index;column:session_id"`
	Question  string
	Answer    string
	Topic     string
	Sentiment string
	Source    string
	Metadata  datatypes.JSON
	CreatedAt time.Time
}

func (ChatInteraction) TableName() string {
	return "chat_interactions"
}
