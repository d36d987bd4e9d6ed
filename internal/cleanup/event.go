package cleanup

import "time"

// TopicSnippetExpired carries ids of records a read discovered past their
// expiry before the store TTL removed them.
const TopicSnippetExpired = "snippet.expired"

// ExpiredEvent asks the cleaner to remove a logically expired snippet.
// Removal is an optimization: the store TTL remains the authority, so a
// lost or failed event has no correctness impact.
type ExpiredEvent struct {
	ID         string    `json:"id"`
	ExpiresAt  time.Time `json:"expiresAt"`
	ObservedAt time.Time `json:"observedAt"`
}
