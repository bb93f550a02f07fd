package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/edurank-nepal/api/internal/public/domain"
)

const (
	MaxCommentRunes   = 4000
	anonymousReviewer = "Anonymous"
)

// ErrCommentTooLong is returned for review comments above MaxCommentRunes.
var ErrCommentTooLong error = &domain.ValidationError{
	Field:   "comment",
	Message: fmt.Sprintf("comment must be at most %d characters", MaxCommentRunes),
}

// reviewService implements ReviewService.
type reviewService struct {
	institutions InstitutionRepository
	reviews      ReviewRepository
	now          func() time.Time
}

// NewReviewService creates a new ReviewService.
func NewReviewService(institutions InstitutionRepository, reviews ReviewRepository) ReviewService {
	return &reviewService{institutions: institutions, reviews: reviews, now: time.Now}
}

func (s *reviewService) Submit(ctx context.Context, cmd SubmitReviewCommand) (*domain.Review, error) {
	inst, err := resolveInstitution(ctx, s.institutions, cmd.Institution)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateRatings(cmd.Ratings); err != nil {
		return nil, err
	}
	comment := strings.TrimSpace(cmd.Comment)
	if utf8.RuneCountInString(comment) > MaxCommentRunes {
		return nil, ErrCommentTooLong
	}
	author := strings.TrimSpace(cmd.AuthorName)
	if author == "" {
		author = anonymousReviewer
	}

	ratings := make(map[domain.ReviewCategory]int, len(cmd.Ratings))
	for k, v := range cmd.Ratings {
		ratings[k] = v
	}
	review := &domain.Review{
		ID:            uuid.NewString(),
		InstitutionID: inst.ID,
		AuthorName:    author,
		Ratings:       ratings,
		Comment:       comment,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("save review: %w", err)
	}
	return review, nil
}

func (s *reviewService) List(ctx context.Context, slugOrID string, paging Paging) ([]domain.Review, int, error) {
	inst, err := resolveInstitution(ctx, s.institutions, slugOrID)
	if err != nil {
		return nil, 0, err
	}
	if paging.Limit <= 0 {
		paging.Limit = DefaultSearchLimit
	}
	return s.reviews.ListByInstitution(ctx, inst.ID, paging)
}

// resolveInstitution looks an institution up by slug first, then by id.
func resolveInstitution(ctx context.Context, repo InstitutionRepository, slugOrID string) (*domain.Institution, error) {
	slugOrID = strings.TrimSpace(slugOrID)
	if slugOrID == "" {
		return nil, domain.ErrNotFound
	}
	inst, err := repo.FindBySlug(ctx, slugOrID)
	if err == nil {
		return inst, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return repo.FindByID(ctx, slugOrID)
}
