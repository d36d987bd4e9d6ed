package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/textshare/internal/ratelimit"
)

// Limiter names referenced by operation metadata. Each name gets its own
// counter keys, so create and delete quotas are tracked independently.
const (
	LimiterShare  = "share"
	LimiterDelete = "delete"
)

// RegisterRoutes registers the snippet routes. Write operations opt into
// rate limiting via operation metadata; reads are unlimited.
func RegisterRoutes(api huma.API, h *SnippetHandler) {
	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/share",
		Summary:     "Share a snippet",
		Description: "Stores a text snippet under a fresh id with the requested retention window.",
		Tags:        []string{"Snippets"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: LimiterShare,
		},
	}, h.CreateSnippet)

	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/text/{id}",
		Summary:     "Fetch a snippet",
		Description: "Returns the snippet stored under the id, without its delete token.",
		Tags:        []string{"Snippets"},
	}, h.GetSnippet)

	huma.Register(api, huma.Operation{
		Method:      http.MethodDelete,
		Path:        "/share",
		Summary:     "Delete a snippet",
		Description: "Removes a snippet early. Requires the delete token supplied at creation.",
		Tags:        []string{"Snippets"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: LimiterDelete,
		},
	}, h.DeleteSnippet)
}
