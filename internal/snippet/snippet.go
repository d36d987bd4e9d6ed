package snippet

import "time"

// DisplayType controls how clients render a snippet. It is stored with the
// record but has no effect on server-side behavior.
type DisplayType string

const (
	DisplayText   DisplayType = "text"
	DisplayQRCode DisplayType = "qrcode"
)

// Valid reports whether the display type is one of the supported values.
func (d DisplayType) Valid() bool {
	return d == DisplayText || d == DisplayQRCode
}

// Expiry is one of the enumerated retention windows a caller may request.
type Expiry string

const (
	Expiry1Day   Expiry = "1day"
	Expiry7Days  Expiry = "7days"
	Expiry30Days Expiry = "30days"
)

// Valid reports whether the expiry is one of the supported values.
func (e Expiry) Valid() bool {
	return e == Expiry1Day || e == Expiry7Days || e == Expiry30Days
}

// Duration returns the retention window as a duration. Unknown values fall
// back to one day, matching the most conservative window.
func (e Expiry) Duration() time.Duration {
	switch e {
	case Expiry7Days:
		return 7 * 24 * time.Hour
	case Expiry30Days:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Snippet is a shared text record. The ID doubles as the store key and is
// not part of the stored value. DeleteToken, when set, authorizes early
// deletion and must never be returned to readers.
type Snippet struct {
	ID          string      `json:"-"`
	Text        string      `json:"text"`
	UserName    string      `json:"userName"`
	DisplayType DisplayType `json:"displayType"`
	CreatedAt   time.Time   `json:"createdAt"`
	ExpiresAt   time.Time   `json:"expiresAt"`
	DeleteToken string      `json:"deleteToken,omitempty"`
}

// Expired reports whether the snippet is logically expired at the given
// instant. The store TTL is the primary enforcement; readers re-check
// expiresAt because the TTL may lag it.
func (s *Snippet) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
