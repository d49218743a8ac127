package http

import (
	"net/http"

	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/slogx"
)

const (
	msgInvalidBody      = "Invalid request body!"
	msgSelectedNotArray = "selectedNotes must be an array"
)

// statusFor maps a service error kind to its HTTP status. Conflicts and
// internal failures answer 400 because the browser frontend only branches
// on 400/401/404.
func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindAuth:
		return http.StatusUnauthorized
	case service.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// writeError writes the failure envelope for err. Internal causes are
// logged and replaced by a generic message.
func writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	kind := service.KindOf(err)
	if kind == service.KindInternal {
		slogx.FromContext(r.Context()).Error("request failed", "op", op, "err", err)
	}
	httpx.WriteFailure(w, statusFor(kind), service.MessageOf(err))
}

func writeBadBody(w http.ResponseWriter) {
	httpx.WriteFailure(w, http.StatusBadRequest, msgInvalidBody)
}
