package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/cardbank/internal/api/apierr"
	"github.com/mcoot/cardbank/internal/api/response"
	"github.com/mcoot/cardbank/internal/model"
	"github.com/mcoot/cardbank/internal/storage"
)

// SessionHandler serves mirrored terminal sessions
type SessionHandler struct {
	storage storage.Storage
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(storage storage.Storage) *SessionHandler {
	return &SessionHandler{storage: storage}
}

// Latest handles GET /api/v1/sessions/latest
func (h *SessionHandler) Latest(w http.ResponseWriter, r *http.Request) {
	session, err := h.storage.GetLatestSession(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("session id is required"))
		return
	}

	session, err := h.storage.GetSession(r.Context(), model.SessionID(id))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}
