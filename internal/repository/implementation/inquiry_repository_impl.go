package implementation

import (
	"context"
	"errors"

	"penai-be/internal/entity"
	"penai-be/internal/repository/contract"

	"gorm.io/gorm"
)

type InquiryRepositoryImpl struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) contract.InquiryRepository {
	return &InquiryRepositoryImpl{db: db}
}

func (r *InquiryRepositoryImpl) FindByFamilyID(ctx context.Context, familyID string) (*entity.Inquiry, error) {
	var inquiry entity.Inquiry
	err := r.db.WithContext(ctx).Where("family_id = ?", familyID).First(&inquiry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inquiry, nil
}
