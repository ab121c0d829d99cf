package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chwpym/autoreturns/internal/model"
	"github.com/chwpym/autoreturns/internal/transport/http/respond"
)

type PartService interface {
	Create(ctx context.Context, p *model.Part) (string, error)
	Update(ctx context.Context, p *model.Part) error
	ByID(ctx context.Context, id string) (*model.Part, error)
	SetStatus(ctx context.Context, id string, status model.Status) error
	List(ctx context.Context, filter model.PartsFilter, pg model.Pagination) (*model.Paged[*model.Part], error)
}

type handler struct {
	svc PartService
}

func NewPartHandler(service PartService) *handler {
	return &handler{svc: service}
}

func (h *handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.byID)
	r.Put("/{id}", h.update)
	r.Patch("/{id}/status", h.setStatus)
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req partRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	id, err := h.svc.Create(r.Context(), req.toModel(""))
	if err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, createdResponse{ID: id})
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	var req partRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if err := h.svc.Update(r.Context(), req.toModel(chi.URLParam(r, "id"))); err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) byID(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	respond.JSON(w, r, http.StatusOK, partToResponse(p))
}

func (h *handler) setStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	err := h.svc.SetStatus(r.Context(), chi.URLParam(r, "id"), model.Status(req.Status))
	if err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	res, err := h.svc.List(r.Context(),
		model.PartsFilter{
			Status: model.Status(q.Get("status")),
			Code:   q.Get("codigo"),
		},
		model.Pagination{Page: page, Limit: limit},
	)
	if err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	respond.JSON(w, r, http.StatusOK, pagedPartsToResponse(res))
}

func mapErrorStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidArgument), errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrPartNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
