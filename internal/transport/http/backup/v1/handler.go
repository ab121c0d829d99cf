package v1

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chwpym/autoreturns/internal/model"
	"github.com/chwpym/autoreturns/internal/transport/http/respond"
)

// Uploaded backups are bounded; a full shop dataset stays far below this.
const maxUploadBytes = 64 << 20

type BackupService interface {
	ExportJSON(ctx context.Context) (*model.BackupFile, error)
	ExportCSV(ctx context.Context, collection string) (*model.BackupFile, error)
	ExportArchive(ctx context.Context) (*model.BackupFile, error)
	RestoreJSON(ctx context.Context, data []byte) (int, error)
	ImportCSV(ctx context.Context, collection string, data []byte) (model.ImportSummary, error)
	LastBackup(ctx context.Context) (*time.Time, error)
}

type handler struct {
	svc BackupService
}

func NewBackupHandler(service BackupService) *handler {
	return &handler{svc: service}
}

func (h *handler) Routes(r chi.Router) {
	r.Get("/export/json", h.exportJSON)
	r.Get("/export/csv/{collection}", h.exportCSV)
	r.Get("/export/zip", h.exportArchive)
	r.Post("/restore/json", h.restoreJSON)
	r.Post("/import/csv/{collection}", h.importCSV)
	r.Get("/status", h.status)
}

func (h *handler) exportJSON(w http.ResponseWriter, r *http.Request) {
	file, err := h.svc.ExportJSON(r.Context())
	if err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	respond.File(w, r, file.Name, file.MIME, file.Data)
}

func (h *handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	file, err := h.svc.ExportCSV(r.Context(), chi.URLParam(r, "collection"))
	if err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	respond.File(w, r, file.Name, file.MIME, file.Data)
}

func (h *handler) exportArchive(w http.ResponseWriter, r *http.Request) {
	file, err := h.svc.ExportArchive(r.Context())
	if err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	respond.File(w, r, file.Name, file.MIME, file.Data)
}

func (h *handler) restoreJSON(w http.ResponseWriter, r *http.Request) {
	data, err := uploadedFile(r)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, err)
		return
	}

	count, err := h.svc.RestoreJSON(r.Context(), data)
	if err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	respond.JSON(w, r, http.StatusOK, restoreResponse{Restored: count})
}

func (h *handler) importCSV(w http.ResponseWriter, r *http.Request) {
	data, err := uploadedFile(r)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, err)
		return
	}

	summary, err := h.svc.ImportCSV(r.Context(), chi.URLParam(r, "collection"), data)
	if err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	respond.JSON(w, r, http.StatusOK, importResponse{
		Added:   summary.Added,
		Skipped: summary.Skipped,
	})
}

func (h *handler) status(w http.ResponseWriter, r *http.Request) {
	last, err := h.svc.LastBackup(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, statusResponse{LastBackup: last})
}

// uploadedFile reads the "arquivo" part of a multipart upload.
func uploadedFile(r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)

	file, _, err := r.FormFile("arquivo")
	if err != nil {
		return nil, errors.New("missing file upload field: arquivo")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.New("failed to read uploaded file")
	}
	return data, nil
}

type restoreResponse struct {
	Restored int `json:"restaurados"`
}

type importResponse struct {
	Added   int `json:"adicionados"`
	Skipped int `json:"ignorados"`
}

type statusResponse struct {
	LastBackup *time.Time `json:"ultimoBackup"`
}

func mapErrorStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrUnknownCollection),
		errors.Is(err, model.ErrMalformedFile):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNothingToExport):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
