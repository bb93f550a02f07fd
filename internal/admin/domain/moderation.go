package domain

import (
	"errors"
	"fmt"
	"time"

	publicdomain "github.com/edurank-nepal/api/internal/public/domain"
)

// ErrInvalidTransition is returned when a status change is not allowed
// from the record's current status.
var ErrInvalidTransition = errors.New("invalid status transition")

// inquiryTransitions lists the statuses reachable from each status.
var inquiryTransitions = map[publicdomain.InquiryStatus][]publicdomain.InquiryStatus{
	publicdomain.InquiryPending:   {publicdomain.InquiryContacted, publicdomain.InquiryResolved},
	publicdomain.InquiryContacted: {publicdomain.InquiryResolved},
}

// CanTransitionInquiry reports whether an inquiry may move from one status to another.
func CanTransitionInquiry(from, to publicdomain.InquiryStatus) bool {
	for _, allowed := range inquiryTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionInquiry moves inquiry to status and stamps UpdatedAt.
func TransitionInquiry(inquiry *publicdomain.Inquiry, to publicdomain.InquiryStatus, at time.Time) error {
	if !CanTransitionInquiry(inquiry.Status, to) {
		return fmt.Errorf("%w: inquiry %s -> %s", ErrInvalidTransition, inquiry.Status, to)
	}
	inquiry.Status = to
	inquiry.UpdatedAt = at
	return nil
}

// DecideClaim approves or rejects a pending claim. Decisions are final.
func DecideClaim(claim *publicdomain.Claim, decision publicdomain.ClaimStatus, at time.Time) error {
	if decision != publicdomain.ClaimApproved && decision != publicdomain.ClaimRejected {
		return fmt.Errorf("%w: %s is not a decision", ErrInvalidTransition, decision)
	}
	if claim.Status != publicdomain.ClaimPending {
		return fmt.Errorf("%w: claim already %s", ErrInvalidTransition, claim.Status)
	}
	claim.Status = decision
	decided := at
	claim.DecidedAt = &decided
	return nil
}
