package domain

import (
	"fmt"
	"strings"
	"time"
)

// InquiryStatus tracks how far an admission inquiry has been handled.
type InquiryStatus string

const (
	InquiryPending   InquiryStatus = "PENDING"
	InquiryContacted InquiryStatus = "CONTACTED"
	InquiryResolved  InquiryStatus = "RESOLVED"
)

// ParseInquiryStatus resolves a status case-insensitively.
func ParseInquiryStatus(value string) (InquiryStatus, error) {
	switch s := InquiryStatus(strings.ToUpper(strings.TrimSpace(value))); s {
	case InquiryPending, InquiryContacted, InquiryResolved:
		return s, nil
	}
	return "", fmt.Errorf("unknown inquiry status: %q", value)
}

// Inquiry is an admission inquiry sent to an institution.
type Inquiry struct {
	ID            string
	InstitutionID string
	StudentName   string
	Email         string
	Phone         string
	Grade         string
	Message       string
	Status        InquiryStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ClaimStatus is the moderation state of a claim or registration.
type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "PENDING"
	ClaimApproved ClaimStatus = "APPROVED"
	ClaimRejected ClaimStatus = "REJECTED"
)

// ParseClaimStatus resolves a status case-insensitively.
func ParseClaimStatus(value string) (ClaimStatus, error) {
	switch s := ClaimStatus(strings.ToUpper(strings.TrimSpace(value))); s {
	case ClaimPending, ClaimApproved, ClaimRejected:
		return s, nil
	}
	return "", fmt.Errorf("unknown claim status: %q", value)
}

// ClaimMode distinguishes claiming a listed institution from registering a new one.
type ClaimMode string

const (
	ClaimExisting ClaimMode = "CLAIM"
	RegisterNew   ClaimMode = "REGISTER"
)

// Claim is a request by an institution's staff to manage its listing.
type Claim struct {
	ID              string
	Mode            ClaimMode
	InstitutionID   string
	InstitutionName string
	City            string
	Type            InstitutionType
	ContactPerson   string
	Position        string
	OfficialEmail   string
	Phone           string
	Status          ClaimStatus
	SubmittedAt     time.Time
	DecidedAt       *time.Time
}
