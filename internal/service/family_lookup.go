package service

import (
	"context"
	"strings"

	"penai-be/internal/repository/contract"
	"penai-be/pkg/family"
)

type familyLookup struct {
	inquiries contract.InquiryRepository
}

// NewFamilyLookup adapts the inquiry repository onto the lookup
// interface the pipeline personalizes with.
func NewFamilyLookup(inquiries contract.InquiryRepository) family.Lookup {
	return &familyLookup{inquiries: inquiries}
}

func (l *familyLookup) GetFamily(ctx context.Context, familyID string) (*family.Context, error) {
	inquiry, err := l.inquiries.FindByFamilyID(ctx, familyID)
	if err != nil || inquiry == nil {
		return nil, err
	}

	return &family.Context{
		FamilyID:       inquiry.FamilyID,
		ChildName:      inquiry.ChildName,
		YearGroup:      inquiry.YearGroup,
		BoardingStatus: inquiry.BoardingStatus,
		Interests:      splitInterests(inquiry.Interests),
		Country:        inquiry.Country,
		LanguagePref:   inquiry.LanguagePref,
		ParentName:     inquiry.ParentName,
		ParentEmail:    inquiry.ParentEmail,
	}, nil
}

func splitInterests(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
