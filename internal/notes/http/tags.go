package http

import (
	"net/http"

	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
)

type TagsHandler struct {
	TagService         *service.TagService
	AssociationService *service.AssociationService
}

// HandleList returns the caller's tags.
//
//	@Summary		List my tags
//	@Tags			Tags
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	notesdk.Envelope[[]notesdk.Tag]
//	@Failure		401	{object}	notesdk.Envelope[any]
//	@Router			/api/v1/tags/my [get].
func (h *TagsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tags, err := h.TagService.ListMine(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		writeError(w, r, "list tags", err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Tags Fetched Successfully!", toTags(tags))
}

// HandleCreate creates a tag.
//
//	@Summary		Create a tag
//	@Tags			Tags
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		notesdk.TagRequest	true	"tag name"
//	@Success		201		{object}	notesdk.Envelope[notesdk.Tag]
//	@Failure		400		{object}	notesdk.Envelope[any]
//	@Failure		401		{object}	notesdk.Envelope[any]
//	@Router			/api/v1/tags/new [post].
func (h *TagsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req notesdk.TagRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	tag, err := h.TagService.Create(ctx, httpx.UserIDFromContext(ctx), req.Name)
	if err != nil {
		writeError(w, r, "create tag", err)
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, "Tag Created Successfully!", toTag(tag))
}

// HandleUpdate renames a tag.
//
//	@Summary		Rename a tag
//	@Tags			Tags
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"tag id"
//	@Param			body	body		notesdk.TagRequest	true	"new name"
//	@Success		200		{object}	notesdk.Envelope[notesdk.Tag]
//	@Failure		400		{object}	notesdk.Envelope[any]
//	@Failure		401		{object}	notesdk.Envelope[any]
//	@Failure		404		{object}	notesdk.Envelope[any]
//	@Router			/api/v1/tags/{id} [put].
func (h *TagsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req notesdk.TagRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	tag, err := h.TagService.Update(ctx, httpx.UserIDFromContext(ctx), r.PathValue("id"), req.Name)
	if err != nil {
		writeError(w, r, "update tag", err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Updated Tag Successfully!", toTag(tag))
}

// HandleDelete deletes a tag and strips it from the caller's notes.
//
//	@Summary		Delete a tag
//	@Tags			Tags
//	@Security		CookieAuth
//	@Produce		json
//	@Param			id	path		string	true	"tag id"
//	@Success		200	{object}	notesdk.Envelope[any]
//	@Failure		400	{object}	notesdk.Envelope[any]
//	@Failure		401	{object}	notesdk.Envelope[any]
//	@Failure		404	{object}	notesdk.Envelope[any]
//	@Router			/api/v1/tags/{id} [delete].
func (h *TagsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.TagService.Delete(ctx, httpx.UserIDFromContext(ctx), r.PathValue("id")); err != nil {
		writeError(w, r, "delete tag", err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Tag Deleted Successfully!", nil)
}

// HandleAttach adds a tag to a note.
//
//	@Summary		Add a tag to a note
//	@Tags			Tags
//	@Security		CookieAuth
//	@Produce		json
//	@Param			noteId	path		string	true	"note id"
//	@Param			tagId	path		string	true	"tag id"
//	@Success		200		{object}	notesdk.Envelope[notesdk.Tag]
//	@Failure		400		{object}	notesdk.Envelope[any]	"bad ids or tag already on the note"
//	@Failure		401		{object}	notesdk.Envelope[any]
//	@Failure		404		{object}	notesdk.Envelope[any]
//	@Router			/api/v1/tags/{noteId}/{tagId} [post].
func (h *TagsHandler) HandleAttach(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tag, err := h.AssociationService.Attach(ctx, httpx.UserIDFromContext(ctx), r.PathValue("noteId"), r.PathValue("tagId"))
	if err != nil {
		writeError(w, r, "attach tag", err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Tag added successfully!", toTag(tag))
}

// HandleDetach removes a tag from a note.
//
//	@Summary		Remove a tag from a note
//	@Tags			Tags
//	@Security		CookieAuth
//	@Produce		json
//	@Param			noteId	path		string	true	"note id"
//	@Param			tagId	path		string	true	"tag id"
//	@Success		200		{object}	notesdk.Envelope[any]
//	@Failure		400		{object}	notesdk.Envelope[any]
//	@Failure		401		{object}	notesdk.Envelope[any]
//	@Failure		404		{object}	notesdk.Envelope[any]
//	@Router			/api/v1/tags/{noteId}/{tagId} [delete].
func (h *TagsHandler) HandleDetach(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.AssociationService.Detach(ctx, httpx.UserIDFromContext(ctx), r.PathValue("noteId"), r.PathValue("tagId"))
	if err != nil {
		writeError(w, r, "detach tag", err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Tag Removed From Note Successfully!", nil)
}
