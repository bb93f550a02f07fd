// Package seed generates sample reviews, inquiries and claims for the
// catalog and writes them through the repository ports.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/edurank-nepal/api/internal/public/domain"
)

// Options controls how much sample data is generated.
type Options struct {
	Reviews   int
	Inquiries int
	Claims    int
	// MaxReviewsPerInstitution caps how many reviews one institution receives.
	MaxReviewsPerInstitution int
}

// Normalize clamps negative counts and applies the per-institution cap.
func (o Options) Normalize() Options {
	if o.Reviews < 0 {
		o.Reviews = 0
	}
	if o.Inquiries < 0 {
		o.Inquiries = 0
	}
	if o.Claims < 0 {
		o.Claims = 0
	}
	if o.MaxReviewsPerInstitution <= 0 {
		o.MaxReviewsPerInstitution = 12
	}
	return o
}

// Dataset is the generated sample data.
type Dataset struct {
	Reviews   []domain.Review
	Inquiries []domain.Inquiry
	Claims    []domain.Claim
}

// Generate builds a dataset for list. The same rng seed and now always produce
// the same dataset.
func Generate(rng *rand.Rand, list []domain.Institution, opts Options, now time.Time) Dataset {
	opts = opts.Normalize()
	var ds Dataset
	if len(list) == 0 {
		return ds
	}

	counts := distribute(opts.Reviews, len(list), opts.MaxReviewsPerInstitution, rng)
	for idx, inst := range list {
		for j := 0; j < counts[idx]; j++ {
			ds.Reviews = append(ds.Reviews, generateReview(rng, inst, now))
		}
	}

	for i := 0; i < opts.Inquiries; i++ {
		inst := list[rng.Intn(len(list))]
		ds.Inquiries = append(ds.Inquiries, generateInquiry(rng, inst, now))
	}

	for i := 0; i < opts.Claims; i++ {
		ds.Claims = append(ds.Claims, generateClaim(rng, list, now))
	}
	return ds
}

func generateReview(rng *rand.Rand, inst domain.Institution, now time.Time) domain.Review {
	created := now.Add(-time.Duration(rng.Intn(180*24)) * time.Hour)
	ratings := make(map[domain.ReviewCategory]int, len(domain.ReviewCategories))
	for _, c := range pickCategories(rng) {
		ratings[c] = 4 + rng.Intn(7)
	}
	author := "Anonymous"
	if rng.Intn(3) != 0 {
		author = fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))])
	}
	return domain.Review{
		ID:            newID(rng),
		InstitutionID: inst.ID,
		AuthorName:    author,
		Ratings:       ratings,
		Comment:       reviewComments[rng.Intn(len(reviewComments))],
		CreatedAt:     created,
	}
}

func pickCategories(rng *rand.Rand) []domain.ReviewCategory {
	n := 3 + rng.Intn(len(domain.ReviewCategories)-2)
	perm := rng.Perm(len(domain.ReviewCategories))
	out := make([]domain.ReviewCategory, 0, n)
	for _, i := range perm[:n] {
		out = append(out, domain.ReviewCategories[i])
	}
	return out
}

func generateInquiry(rng *rand.Rand, inst domain.Institution, now time.Time) domain.Inquiry {
	created := now.Add(-time.Duration(rng.Intn(60*24)) * time.Hour)
	first := firstNames[rng.Intn(len(firstNames))]
	last := lastNames[rng.Intn(len(lastNames))]
	status := domain.InquiryPending
	switch rng.Intn(4) {
	case 0:
		status = domain.InquiryContacted
	case 1:
		status = domain.InquiryResolved
	}
	return domain.Inquiry{
		ID:            newID(rng),
		InstitutionID: inst.ID,
		StudentName:   first + " " + last,
		Email:         fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), rng.Intn(90)+10),
		Phone:         fmt.Sprintf("98%08d", rng.Intn(100000000)),
		Grade:         grades[rng.Intn(len(grades))],
		Message:       fmt.Sprintf("Please share admission details for %s.", inst.Name),
		Status:        status,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

func generateClaim(rng *rand.Rand, list []domain.Institution, now time.Time) domain.Claim {
	submitted := now.Add(-time.Duration(rng.Intn(30*24)) * time.Hour)
	first := firstNames[rng.Intn(len(firstNames))]
	last := lastNames[rng.Intn(len(lastNames))]
	claim := domain.Claim{
		ID:            "REF-" + strings.ToUpper(strings.ReplaceAll(newID(rng), "-", "")[:8]),
		ContactPerson: first + " " + last,
		Position:      positions[rng.Intn(len(positions))],
		Phone:         fmt.Sprintf("01-%07d", rng.Intn(10000000)),
		Status:        domain.ClaimPending,
		SubmittedAt:   submitted,
	}

	if rng.Intn(3) == 0 {
		name := newInstitutionNames[rng.Intn(len(newInstitutionNames))]
		claim.Mode = domain.RegisterNew
		claim.InstitutionName = name
		claim.City = cities[rng.Intn(len(cities))]
		claim.Type = domain.TypeSchool
		claim.OfficialEmail = fmt.Sprintf("info@%s.edu.np", domain.Slugify(name))
		return claim
	}

	inst := list[rng.Intn(len(list))]
	claim.Mode = domain.ClaimExisting
	claim.InstitutionID = inst.ID
	claim.InstitutionName = inst.Name
	claim.City = inst.City
	claim.Type = inst.Type
	claim.OfficialEmail = fmt.Sprintf("%s@%s.edu.np", strings.ToLower(first), inst.Slug)
	return claim
}

// distribute spreads total across buckets with at most maxPerBucket each.
// Anything beyond buckets*maxPerBucket is dropped.
func distribute(total, buckets, maxPerBucket int, rng *rand.Rand) []int {
	if buckets <= 0 {
		return nil
	}
	counts := make([]int, buckets)
	if capacity := buckets * maxPerBucket; total > capacity {
		total = capacity
	}
	open := make([]int, buckets)
	for i := range open {
		open[i] = i
	}
	for ; total > 0; total-- {
		k := rng.Intn(len(open))
		i := open[k]
		counts[i]++
		if counts[i] >= maxPerBucket {
			open[k] = open[len(open)-1]
			open = open[:len(open)-1]
		}
	}
	return counts
}

func newID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Targets are the stores a dataset is written to. A nil target is skipped.
type Targets struct {
	Institutions InstitutionWriter
	Reviews      ReviewWriter
	Inquiries    InquiryWriter
	Claims       ClaimWriter
}

// InstitutionWriter replaces the stored catalog.
type InstitutionWriter interface {
	ReplaceAll(ctx context.Context, list []domain.Institution) (int, int, error)
}

type ReviewWriter interface {
	Create(ctx context.Context, review *domain.Review) error
}

type InquiryWriter interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) error
}

type ClaimWriter interface {
	Create(ctx context.Context, claim *domain.Claim) error
}

// Report counts what Write stored.
type Report struct {
	Institutions int
	Pruned       int
	Reviews      int
	Inquiries    int
	Claims       int
}

// Write stores the catalog first and then the dataset, one goroutine per
// collection.
func Write(ctx context.Context, t Targets, list []domain.Institution, ds Dataset) (Report, error) {
	var report Report
	if t.Institutions != nil {
		written, pruned, err := t.Institutions.ReplaceAll(ctx, list)
		if err != nil {
			return report, fmt.Errorf("write institutions: %w", err)
		}
		report.Institutions, report.Pruned = written, pruned
	}

	g, gctx := errgroup.WithContext(ctx)
	if t.Reviews != nil {
		g.Go(func() error {
			for i := range ds.Reviews {
				if err := t.Reviews.Create(gctx, &ds.Reviews[i]); err != nil {
					return fmt.Errorf("write review %s: %w", ds.Reviews[i].ID, err)
				}
				report.Reviews++
			}
			return nil
		})
	}
	if t.Inquiries != nil {
		g.Go(func() error {
			for i := range ds.Inquiries {
				if err := t.Inquiries.Create(gctx, &ds.Inquiries[i]); err != nil {
					return fmt.Errorf("write inquiry %s: %w", ds.Inquiries[i].ID, err)
				}
				report.Inquiries++
			}
			return nil
		})
	}
	if t.Claims != nil {
		g.Go(func() error {
			for i := range ds.Claims {
				if err := t.Claims.Create(gctx, &ds.Claims[i]); err != nil {
					return fmt.Errorf("write claim %s: %w", ds.Claims[i].ID, err)
				}
				report.Claims++
			}
			return nil
		})
	}
	err := g.Wait()
	return report, err
}
