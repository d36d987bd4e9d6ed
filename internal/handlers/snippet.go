package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/textshare/internal/snippet"
	"go.uber.org/zap"
)

// SnippetHandler exposes the snippet lifecycle over HTTP.
type SnippetHandler struct {
	service *snippet.Service
	logger  *zap.Logger
}

// NewSnippetHandler creates a snippet handler.
func NewSnippetHandler(service *snippet.Service, logger *zap.Logger) *SnippetHandler {
	return &SnippetHandler{
		service: service,
		logger:  logger,
	}
}

// CreateSnippet stores a new snippet and returns its id.
func (h *SnippetHandler) CreateSnippet(ctx context.Context, req *CreateSnippetRequest) (*CreateSnippetResponse, error) {
	snip, err := h.service.Create(ctx, snippet.CreateInput{
		Text:        req.Body.Text,
		UserName:    req.Body.UserName,
		DisplayType: req.Body.DisplayType,
		ExpiryTime:  req.Body.ExpiryTime,
		DeleteToken: req.Body.DeleteToken,
	})
	if err != nil {
		var verr *snippet.ValidationError
		if errors.As(err, &verr) {
			return nil, huma.Error400BadRequest(verr.Error())
		}

		h.logger.Error("failed to create snippet", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to store snippet")
	}

	resp := &CreateSnippetResponse{}
	resp.Body.ID = snip.ID

	return resp, nil
}

// GetSnippet fetches a snippet by id. Expired records are reported as not
// found and the delete token never appears in the response.
func (h *SnippetHandler) GetSnippet(ctx context.Context, req *GetSnippetRequest) (*GetSnippetResponse, error) {
	snip, err := h.service.Get(ctx, req.ID)
	if err != nil {
		var verr *snippet.ValidationError
		if errors.As(err, &verr) {
			return nil, huma.Error400BadRequest(verr.Error())
		}

		if errors.Is(err, snippet.ErrNotFound) {
			return nil, huma.Error404NotFound("snippet not found or expired")
		}

		h.logger.Error("failed to get snippet", zap.String("id", req.ID), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to fetch snippet")
	}

	resp := &GetSnippetResponse{}
	resp.Body.Text = snip.Text
	resp.Body.UserName = snip.UserName
	resp.Body.DisplayType = string(snip.DisplayType)
	resp.Body.CreatedAt = snip.CreatedAt
	resp.Body.ExpiresAt = snip.ExpiresAt

	return resp, nil
}

// DeleteSnippet removes a snippet early when the supplied token matches.
func (h *SnippetHandler) DeleteSnippet(ctx context.Context, req *DeleteSnippetRequest) (*DeleteSnippetResponse, error) {
	if req.Body.ID == "" || req.Body.DeleteToken == "" {
		return nil, huma.Error400BadRequest("id and deleteToken are required")
	}

	err := h.service.Delete(ctx, req.Body.ID, req.Body.DeleteToken)
	if err != nil {
		var verr *snippet.ValidationError
		if errors.As(err, &verr) {
			return nil, huma.Error400BadRequest(verr.Error())
		}

		if errors.Is(err, snippet.ErrNotFound) {
			return nil, huma.Error404NotFound("snippet not found or expired")
		}

		if errors.Is(err, snippet.ErrPermissionDenied) {
			return nil, huma.Error403Forbidden("delete not authorized")
		}

		h.logger.Error("failed to delete snippet", zap.String("id", req.Body.ID), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to delete snippet")
	}

	resp := &DeleteSnippetResponse{}
	resp.Body.Deleted = true

	return resp, nil
}
