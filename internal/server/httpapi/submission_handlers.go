package httpapi

import (
	"io"
	"net/http"

	"github.com/dmitrijs2005/fairhub/internal/common"
	"github.com/dmitrijs2005/fairhub/internal/filex"
	"github.com/dmitrijs2005/fairhub/internal/server/services"
	"github.com/go-chi/chi/v5"
)

// maxIngestBodyBytes caps the multipart body. Four images plus text fields
// fit comfortably; anything larger is rejected up front.
const maxIngestBodyBytes = 64 << 20

// handleIngest accepts a multipart form: text fields title, email, about and
// one or more file parts named "images". Part order is the author's chosen
// image order and is preserved end to end.
func (h *Handler) handleIngest(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxIngestBodyBytes)
	if err := r.ParseMultipartForm(maxIngestBodyBytes); err != nil {
		h.writeError(r.Context(), w, common.ErrorValidation)
		return
	}

	req := &services.IngestRequest{
		FairID:   chi.URLParam(r, "fairID"),
		Title:    r.FormValue("title"),
		Email:    r.FormValue("email"),
		About:    r.FormValue("about"),
		ImageURL: r.FormValue("image_url"),
	}

	for _, header := range r.MultipartForm.File["images"] {
		part, err := header.Open()
		if err != nil {
			h.writeError(r.Context(), w, common.ErrorValidation)
			return
		}
		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			h.writeError(r.Context(), w, common.ErrorValidation)
			return
		}
		req.Files = append(req.Files, &filex.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	created, err := h.submissions.Ingest(r.Context(), UserIDFromContext(r.Context()), req)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	views, err := h.listings.List(r.Context(), chi.URLParam(r, "fairID"))
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	view, err := h.listings.Get(r.Context(), chi.URLParam(r, "submissionID"))
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleDeleteSubmission(w http.ResponseWriter, r *http.Request) {
	err := h.submissions.Delete(r.Context(), UserIDFromContext(r.Context()), chi.URLParam(r, "submissionID"))
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
