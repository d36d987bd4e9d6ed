package snippet

import (
	"regexp"
	"unicode/utf8"
)

const (
	// DefaultIDLength is the length of generated snippet ids.
	DefaultIDLength = 8

	// MaxUserNameLength bounds the optional owner label.
	MaxUserNameLength = 50

	// DeleteTokenLength is the exact length of a delete token.
	DeleteTokenLength = 8
)

var alnumPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ValidateID checks the shape of an id before any store round trip:
// exact length, alphanumeric only.
func ValidateID(id string, length int) error {
	if len(id) != length || !alnumPattern.MatchString(id) {
		return &ValidationError{Field: "id", Reason: "must be exactly the configured length and alphanumeric"}
	}

	return nil
}

// CreateInput carries the caller-supplied fields of a Create call.
// UserName and DeleteToken are optional.
type CreateInput struct {
	Text        string
	UserName    string
	DisplayType string
	ExpiryTime  string
	DeleteToken string
}

// Validate checks every field and reports the first offending one.
func (in CreateInput) Validate(maxTextLength int) error {
	if in.Text == "" {
		return &ValidationError{Field: "text", Reason: "must not be empty"}
	}

	// Length limits count characters, not bytes, so multi-byte scripts get
	// the full budget.
	if utf8.RuneCountInString(in.Text) > maxTextLength {
		return &ValidationError{Field: "text", Reason: "exceeds the maximum length"}
	}

	if utf8.RuneCountInString(in.UserName) > MaxUserNameLength {
		return &ValidationError{Field: "userName", Reason: "exceeds the maximum length"}
	}

	if !DisplayType(in.DisplayType).Valid() {
		return &ValidationError{Field: "displayType", Reason: "must be 'text' or 'qrcode'"}
	}

	if !Expiry(in.ExpiryTime).Valid() {
		return &ValidationError{Field: "expiryTime", Reason: "must be '1day', '7days' or '30days'"}
	}

	if in.DeleteToken != "" {
		if len(in.DeleteToken) != DeleteTokenLength || !alnumPattern.MatchString(in.DeleteToken) {
			return &ValidationError{Field: "deleteToken", Reason: "must be exactly 8 alphanumeric characters"}
		}
	}

	return nil
}
