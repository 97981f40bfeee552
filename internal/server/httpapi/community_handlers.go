package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/fairhub/internal/common"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleVote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VoteType string `json:"vote_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(r.Context(), w, common.ErrorValidation)
		return
	}

	err := h.community.Vote(r.Context(), UserIDFromContext(r.Context()), chi.URLParam(r, "submissionID"), req.VoteType)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Body string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(r.Context(), w, common.ErrorValidation)
		return
	}

	comment, err := h.community.Comment(r.Context(), UserIDFromContext(r.Context()), chi.URLParam(r, "submissionID"), req.Body)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

func (h *Handler) handleListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.community.Comments(r.Context(), chi.URLParam(r, "submissionID"))
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}
