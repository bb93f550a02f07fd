package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	publicdomain "github.com/edurank-nepal/api/internal/public/domain"
)

func TestCanTransitionInquiry(t *testing.T) {
	cases := []struct {
		from, to publicdomain.InquiryStatus
		ok       bool
	}{
		{publicdomain.InquiryPending, publicdomain.InquiryContacted, true},
		{publicdomain.InquiryPending, publicdomain.InquiryResolved, true},
		{publicdomain.InquiryContacted, publicdomain.InquiryResolved, true},
		{publicdomain.InquiryContacted, publicdomain.InquiryPending, false},
		{publicdomain.InquiryResolved, publicdomain.InquiryContacted, false},
		{publicdomain.InquiryResolved, publicdomain.InquiryPending, false},
		{publicdomain.InquiryPending, publicdomain.InquiryPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransitionInquiry(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTransitionInquiry(t *testing.T) {
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	inquiry := &publicdomain.Inquiry{Status: publicdomain.InquiryPending}

	require.NoError(t, TransitionInquiry(inquiry, publicdomain.InquiryContacted, at))
	assert.Equal(t, publicdomain.InquiryContacted, inquiry.Status)
	assert.Equal(t, at, inquiry.UpdatedAt)

	err := TransitionInquiry(inquiry, publicdomain.InquiryPending, at.Add(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, at, inquiry.UpdatedAt, "rejected transition leaves the record untouched")
}

func TestDecideClaim(t *testing.T) {
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	claim := &publicdomain.Claim{Status: publicdomain.ClaimPending}
	require.NoError(t, DecideClaim(claim, publicdomain.ClaimApproved, at))
	assert.Equal(t, publicdomain.ClaimApproved, claim.Status)
	require.NotNil(t, claim.DecidedAt)
	assert.Equal(t, at, *claim.DecidedAt)

	assert.ErrorIs(t, DecideClaim(claim, publicdomain.ClaimRejected, at), ErrInvalidTransition)

	pending := &publicdomain.Claim{Status: publicdomain.ClaimPending}
	assert.ErrorIs(t, DecideClaim(pending, publicdomain.ClaimPending, at), ErrInvalidTransition)
	assert.Nil(t, pending.DecidedAt)
}

func TestInquiryCounts(t *testing.T) {
	counts := InquiryCounts{publicdomain.InquiryPending: 2, publicdomain.InquiryResolved: 1}
	assert.Equal(t, 3, counts.Total())

	stats := InstitutionStats{CatalogReviews: 10, SubmittedReviews: 2}
	assert.Equal(t, 12, stats.TotalReviews())
}
