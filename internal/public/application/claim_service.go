package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/edurank-nepal/api/internal/public/domain"
)

const claimRefPrefix = "REF-"

// claimCommandService implements ClaimCommandService.
type claimCommandService struct {
	institutions InstitutionRepository
	claims       ClaimWriter
	now          func() time.Time
}

// NewClaimCommandService creates a new ClaimCommandService.
func NewClaimCommandService(institutions InstitutionRepository, claims ClaimWriter) ClaimCommandService {
	return &claimCommandService{institutions: institutions, claims: claims, now: time.Now}
}

func (s *claimCommandService) Submit(ctx context.Context, cmd SubmitClaimCommand) (*domain.Claim, error) {
	claim := &domain.Claim{
		ID:          NewClaimReference(),
		Mode:        cmd.Mode,
		Status:      domain.ClaimPending,
		SubmittedAt: s.now().UTC(),
	}

	switch cmd.Mode {
	case domain.ClaimExisting:
		if strings.TrimSpace(cmd.InstitutionID) == "" {
			return nil, domain.Invalid("institutionId", "select the institution to claim")
		}
		inst, err := resolveInstitution(ctx, s.institutions, cmd.InstitutionID)
		if err != nil {
			return nil, err
		}
		claim.InstitutionID = inst.ID
		claim.InstitutionName = inst.Name
		claim.City = inst.City
		claim.Type = inst.Type
	case domain.RegisterNew:
		name := strings.Join(strings.Fields(cmd.InstitutionName), " ")
		if name == "" {
			return nil, domain.Invalid("institutionName", "institution name is required")
		}
		city := strings.TrimSpace(cmd.City)
		if city == "" {
			return nil, domain.Invalid("city", "city is required")
		}
		typ, err := domain.ParseType(string(cmd.Type))
		if err != nil {
			return nil, domain.Invalid("type", "%s", err.Error())
		}
		claim.InstitutionName = name
		claim.City = city
		claim.Type = typ
	default:
		return nil, domain.Invalid("mode", "mode must be %s or %s", domain.ClaimExisting, domain.RegisterNew)
	}

	person, err := domain.NewPersonName("contactPerson", cmd.ContactPerson)
	if err != nil {
		return nil, err
	}
	position := strings.TrimSpace(cmd.Position)
	if position == "" {
		return nil, domain.Invalid("position", "position is required")
	}
	email, err := domain.NewEmail(cmd.OfficialEmail)
	if err != nil {
		return nil, err
	}
	phone, err := domain.NewPhone(cmd.Phone)
	if err != nil {
		return nil, err
	}
	claim.ContactPerson = person.String()
	claim.Position = position
	claim.OfficialEmail = email.String()
	claim.Phone = phone.String()

	if err := s.claims.Create(ctx, claim); err != nil {
		return nil, fmt.Errorf("save claim: %w", err)
	}
	return claim, nil
}

// NewClaimReference returns a reference such as "REF-9F86D081".
func NewClaimReference() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return claimRefPrefix + strings.ToUpper(raw[:8])
}
