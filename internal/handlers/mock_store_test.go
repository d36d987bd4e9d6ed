package handlers_test

import (
	"context"
	"errors"
	"time"

	"github.com/serroba/textshare/internal/snippet"
)

var errMock = errors.New("mock store error")

// mockStore is a snippet.Repository double with scriptable errors.
type mockStore struct {
	createErr error
	getErr    error
	deleteErr error
	existsErr error

	snip *snippet.Snippet
}

func (m *mockStore) Create(_ context.Context, _ *snippet.Snippet, _ time.Duration) error {
	return m.createErr
}

func (m *mockStore) Get(_ context.Context, _ string) (*snippet.Snippet, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}

	if m.snip == nil {
		return nil, snippet.ErrNotFound
	}

	return m.snip, nil
}

func (m *mockStore) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

func (m *mockStore) Exists(_ context.Context, _ string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}

	return false, nil
}
