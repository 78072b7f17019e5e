package contract

import (
	"context"

	"penai-be/internal/entity"
)

type InquiryRepository interface {
	// FindByFamilyID returns (nil, nil) when no inquiry exists.
	FindByFamilyID(ctx context.Context, familyID string) (*entity.Inquiry, error)
}
