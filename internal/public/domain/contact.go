package domain

import (
	"net/mail"
	"strings"
	"unicode"
)

const (
	maxEmailLength = 254
	maxNameLength  = 120
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// PersonName is a trimmed, non-empty name of a contact or student.
type PersonName string

func NewPersonName(field, value string) (PersonName, error) {
	trimmed := strings.Join(strings.Fields(value), " ")
	if trimmed == "" {
		return "", Invalid(field, "%s is required", field)
	}
	if len([]rune(trimmed)) > maxNameLength {
		return "", Invalid(field, "%s must be at most %d characters", field, maxNameLength)
	}
	return PersonName(trimmed), nil
}

func (n PersonName) String() string {
	return string(n)
}

// Email is a syntactically valid address stored in lower case.
type Email string

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", Invalid("email", "email is required")
	}
	if len(trimmed) > maxEmailLength {
		return "", Invalid("email", "email too long")
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", Invalid("email", "invalid email: %s", trimmed)
	}
	return Email(strings.ToLower(trimmed)), nil
}

func (e Email) String() string {
	return string(e)
}

// Phone accepts digits with the usual separators, e.g. "+977 980-0000000".
type Phone string

func NewPhone(value string) (Phone, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", Invalid("phone", "phone is required")
	}
	digits := 0
	for i, r := range trimmed {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return "", Invalid("phone", "invalid phone: %s", trimmed)
		}
	}
	if digits < minPhoneDigits || digits > maxPhoneDigits {
		return "", Invalid("phone", "phone must have between %d and %d digits", minPhoneDigits, maxPhoneDigits)
	}
	return Phone(trimmed), nil
}

func (p Phone) String() string {
	return string(p)
}

// Contact groups the person details shared by inquiries and claims.
type Contact struct {
	Name  PersonName
	Email Email
	Phone Phone
}

func NewContact(nameField, name, email, phone string) (Contact, error) {
	n, err := NewPersonName(nameField, name)
	if err != nil {
		return Contact{}, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return Contact{}, err
	}
	p, err := NewPhone(phone)
	if err != nil {
		return Contact{}, err
	}
	return Contact{Name: n, Email: e, Phone: p}, nil
}
