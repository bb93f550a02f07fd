package application

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/edurank-nepal/api/internal/public/domain"
)

const (
	MaxInquiryMessageRunes = 2000
	maxGradeRunes          = 80
)

// inquiryCommandService implements InquiryCommandService.
type inquiryCommandService struct {
	institutions InstitutionRepository
	inquiries    InquiryWriter
	now          func() time.Time
}

// NewInquiryCommandService creates a new InquiryCommandService.
func NewInquiryCommandService(institutions InstitutionRepository, inquiries InquiryWriter) InquiryCommandService {
	return &inquiryCommandService{institutions: institutions, inquiries: inquiries, now: time.Now}
}

func (s *inquiryCommandService) Submit(ctx context.Context, cmd SubmitInquiryCommand) (*domain.Inquiry, error) {
	inst, err := resolveInstitution(ctx, s.institutions, cmd.Institution)
	if err != nil {
		return nil, err
	}
	contact, err := domain.NewContact("studentName", cmd.StudentName, cmd.Email, cmd.Phone)
	if err != nil {
		return nil, err
	}
	grade := strings.TrimSpace(cmd.Grade)
	if grade == "" {
		return nil, domain.Invalid("grade", "grade is required")
	}
	if utf8.RuneCountInString(grade) > maxGradeRunes {
		return nil, domain.Invalid("grade", "grade must be at most %d characters", maxGradeRunes)
	}
	message := strings.TrimSpace(cmd.Message)
	if utf8.RuneCountInString(message) > MaxInquiryMessageRunes {
		return nil, domain.Invalid("message", "message must be at most %d characters", MaxInquiryMessageRunes)
	}

	now := s.now().UTC()
	inquiry := &domain.Inquiry{
		ID:            uuid.NewString(),
		InstitutionID: inst.ID,
		StudentName:   contact.Name.String(),
		Email:         contact.Email.String(),
		Phone:         contact.Phone.String(),
		Grade:         grade,
		Message:       message,
		Status:        domain.InquiryPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("save inquiry: %w", err)
	}
	return inquiry, nil
}
