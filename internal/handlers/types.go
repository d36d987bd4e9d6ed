package handlers

import "time"

// CreateSnippetRequest is the request body for sharing a snippet.
type CreateSnippetRequest struct {
	Body struct {
		Text        string `doc:"The text to share"                                          example:"meet me at the usual place"  json:"text"`
		UserName    string `doc:"Optional label shown to readers"                            example:"alice"                       json:"userName,omitempty"`
		DisplayType string `doc:"How clients should render the snippet"                      example:"qrcode"                      json:"displayType"`
		ExpiryTime  string `doc:"Retention window"                                           example:"1day"                        json:"expiryTime"`
		DeleteToken string `doc:"Optional 8-character token authorizing early deletion"      example:"a1B2c3D4"                    json:"deleteToken,omitempty"`
	}
}

// CreateSnippetResponse carries the id under which the snippet was stored.
type CreateSnippetResponse struct {
	Body struct {
		ID string `doc:"The snippet id" example:"xK9mPq2T" json:"id"`
	}
}

// GetSnippetRequest fetches a snippet by id.
type GetSnippetRequest struct {
	ID string `doc:"The snippet id" example:"xK9mPq2T" path:"id"`
}

// GetSnippetResponse is the stored record with the delete token stripped.
type GetSnippetResponse struct {
	Body struct {
		Text        string    `doc:"The shared text"               json:"text"`
		UserName    string    `doc:"Label supplied by the creator" json:"userName"`
		DisplayType string    `doc:"Client rendering hint"         json:"displayType"`
		CreatedAt   time.Time `doc:"Creation time"                 json:"createdAt"`
		ExpiresAt   time.Time `doc:"Expiry time"                   json:"expiresAt"`
	}
}

// DeleteSnippetRequest is the request body for deleting a snippet early.
type DeleteSnippetRequest struct {
	Body struct {
		ID          string `doc:"The snippet id"                       example:"xK9mPq2T" json:"id"`
		DeleteToken string `doc:"The token supplied at creation time"  example:"a1B2c3D4" json:"deleteToken"`
	}
}

// DeleteSnippetResponse acknowledges a successful deletion.
type DeleteSnippetResponse struct {
	Body struct {
		Deleted bool `doc:"Always true on success" json:"deleted"`
	}
}
