package notesdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListTags returns the caller's tags.
func (c *SDKClient) ListTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if _, err := c.call(ctx, http.MethodGet, "/tags/my", nil, http.StatusOK, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *SDKClient) CreateTag(ctx context.Context, req TagRequest) (*Tag, error) {
	var tag Tag
	if _, err := c.call(ctx, http.MethodPost, "/tags/new", req, http.StatusCreated, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// UpdateTag renames a tag.
func (c *SDKClient) UpdateTag(ctx context.Context, id string, req TagRequest) (*Tag, error) {
	var tag Tag
	if _, err := c.call(ctx, http.MethodPut, "/tags/"+url.PathEscape(id), req, http.StatusOK, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag deletes a tag and removes it from every note carrying it.
func (c *SDKClient) DeleteTag(ctx context.Context, id string) error {
	_, err := c.call(ctx, http.MethodDelete, "/tags/"+url.PathEscape(id), nil, http.StatusOK, nil)
	return err
}

// AttachTag adds a tag to a note and returns the tag.
func (c *SDKClient) AttachTag(ctx context.Context, noteID, tagID string) (*Tag, error) {
	var tag Tag
	if _, err := c.call(ctx, http.MethodPost, assocPath(noteID, tagID), nil, http.StatusOK, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DetachTag removes a tag from a note.
func (c *SDKClient) DetachTag(ctx context.Context, noteID, tagID string) error {
	_, err := c.call(ctx, http.MethodDelete, assocPath(noteID, tagID), nil, http.StatusOK, nil)
	return err
}

func assocPath(noteID, tagID string) string {
	return "/tags/" + url.PathEscape(noteID) + "/" + url.PathEscape(tagID)
}
