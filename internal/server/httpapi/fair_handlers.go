package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/fairhub/internal/common"
	"github.com/dmitrijs2005/fairhub/internal/server/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleGetFair(w http.ResponseWriter, r *http.Request) {
	fair, err := h.fairs.Get(r.Context(), chi.URLParam(r, "fairID"))
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, fair)
}

func (h *Handler) handleUpdateFair(w http.ResponseWriter, r *http.Request) {
	var fair models.Fair
	if err := json.NewDecoder(r.Body).Decode(&fair); err != nil {
		h.writeError(r.Context(), w, common.ErrorValidation)
		return
	}
	fair.ID = chi.URLParam(r, "fairID")

	updated, err := h.fairs.Update(r.Context(), UserIDFromContext(r.Context()), &fair)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
