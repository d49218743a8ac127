package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
)

type NotesHandler struct {
	NoteService *service.NoteService
}

// HandleList returns the caller's notes.
//
//	@Summary		List my notes
//	@Description	Returns the caller's notes in creation order with their tags resolved.
//	@Tags			Notes
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	notesdk.Envelope[[]notesdk.Note]
//	@Failure		401	{object}	notesdk.Envelope[any]
//	@Router			/api/v1/notes/my [get].
func (h *NotesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notes, err := h.NoteService.ListMine(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		writeError(w, r, "list notes", err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Notes fetched Successfully!", toNotes(notes))
}

// HandleCreate creates a note.
//
//	@Summary		Create a note
//	@Tags			Notes
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		notesdk.CreateNoteRequest	true	"title and content, not both blank"
//	@Success		201		{object}	notesdk.Envelope[notesdk.Note]
//	@Failure		400		{object}	notesdk.Envelope[any]
//	@Failure		401		{object}	notesdk.Envelope[any]
//	@Router			/api/v1/notes/new [post].
func (h *NotesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req notesdk.CreateNoteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	note, err := h.NoteService.Create(ctx, httpx.UserIDFromContext(ctx), req.Title, req.Content)
	if err != nil {
		writeError(w, r, "create note", err)
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, "Created Note Successfully!", toNote(note))
}

// HandleUpdate applies a partial update to a note.
//
//	@Summary		Update a note
//	@Description	Absent fields are left untouched. A note can never be archived and bookmarked at the same time.
//	@Tags			Notes
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"note id"
//	@Param			body	body		notesdk.UpdateNoteRequest	true	"fields to change"
//	@Success		200		{object}	notesdk.Envelope[notesdk.Note]
//	@Failure		400		{object}	notesdk.Envelope[any]
//	@Failure		401		{object}	notesdk.Envelope[any]
//	@Failure		404		{object}	notesdk.Envelope[any]
//	@Router			/api/v1/notes/{id} [put].
func (h *NotesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req notesdk.UpdateNoteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	patch := domain.NotePatch{
		Title:        req.Title,
		Content:      req.Content,
		IsArchived:   req.IsArchived,
		IsBookmarked: req.IsBookmarked,
	}

	note, err := h.NoteService.Update(ctx, httpx.UserIDFromContext(ctx), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, r, "update note", err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Note Updated Successfully!", toNote(note))
}

// HandleDelete deletes a note. Deleting a missing note succeeds.
//
//	@Summary		Delete a note
//	@Tags			Notes
//	@Security		CookieAuth
//	@Produce		json
//	@Param			id	path		string	true	"note id"
//	@Success		200	{object}	notesdk.Envelope[any]
//	@Failure		400	{object}	notesdk.Envelope[any]
//	@Failure		401	{object}	notesdk.Envelope[any]
//	@Router			/api/v1/notes/{id} [delete].
func (h *NotesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.NoteService.Delete(ctx, httpx.UserIDFromContext(ctx), r.PathValue("id")); err != nil {
		writeError(w, r, "delete note", err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Note Deleted Successfully!", nil)
}

type batchDeleteBody struct {
	SelectedNotes json.RawMessage `json:"selectedNotes"`
}

// HandleBatchDelete deletes several notes at once.
//
//	@Summary		Delete several notes
//	@Description	Every id must be well formed. Returns the requested ids.
//	@Tags			Notes
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		notesdk.BatchDeleteRequest	true	"ids to delete"
//	@Success		200		{object}	notesdk.Envelope[[]string]
//	@Failure		400		{object}	notesdk.Envelope[any]
//	@Failure		401		{object}	notesdk.Envelope[any]
//	@Router			/api/v1/notes/batch-delete [delete].
func (h *NotesHandler) HandleBatchDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body batchDeleteBody
	if err := httpx.DecodeJSON(w, r, &body); err != nil {
		writeBadBody(w)
		return
	}

	raw := bytes.TrimSpace(body.SelectedNotes)
	if len(raw) == 0 || raw[0] != '[' {
		httpx.WriteFailure(w, http.StatusBadRequest, msgSelectedNotArray)
		return
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		httpx.WriteFailure(w, http.StatusBadRequest, service.MsgInvalidID)
		return
	}

	deleted, err := h.NoteService.BatchDelete(ctx, httpx.UserIDFromContext(ctx), ids)
	if err != nil {
		writeError(w, r, "batch delete notes", err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Notes Deleted Successfully!", deleted)
}
