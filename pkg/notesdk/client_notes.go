package notesdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListNotes returns the caller's notes in creation order.
func (c *SDKClient) ListNotes(ctx context.Context) ([]Note, error) {
	var notes []Note
	if _, err := c.call(ctx, http.MethodGet, "/notes/my", nil, http.StatusOK, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// CreateNote creates a note. Title and content may not both be blank.
func (c *SDKClient) CreateNote(ctx context.Context, req CreateNoteRequest) (*Note, error) {
	var note Note
	if _, err := c.call(ctx, http.MethodPost, "/notes/new", req, http.StatusCreated, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote applies a partial update to a note.
func (c *SDKClient) UpdateNote(ctx context.Context, id string, req UpdateNoteRequest) (*Note, error) {
	var note Note
	if _, err := c.call(ctx, http.MethodPut, "/notes/"+url.PathEscape(id), req, http.StatusOK, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteNote deletes a note. Deleting a note that does not exist succeeds.
func (c *SDKClient) DeleteNote(ctx context.Context, id string) error {
	_, err := c.call(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil, http.StatusOK, nil)
	return err
}

// BatchDelete deletes several notes and returns the ids that were requested.
func (c *SDKClient) BatchDelete(ctx context.Context, ids []string) ([]string, error) {
	var deleted []string
	req := BatchDeleteRequest{SelectedNotes: ids}
	if _, err := c.call(ctx, http.MethodDelete, "/notes/batch-delete", req, http.StatusOK, &deleted); err != nil {
		return nil, err
	}
	return deleted, nil
}
