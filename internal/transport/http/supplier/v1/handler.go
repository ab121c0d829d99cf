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

type SupplierService interface {
	Create(ctx context.Context, s *model.Supplier) (string, error)
	Update(ctx context.Context, s *model.Supplier) error
	ByID(ctx context.Context, id string) (*model.Supplier, error)
	SetStatus(ctx context.Context, id string, status model.Status) error
	List(ctx context.Context, filter model.SuppliersFilter, pg model.Pagination) (*model.Paged[*model.Supplier], error)
}

type handler struct {
	svc SupplierService
}

func NewSupplierHandler(service SupplierService) *handler {
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
	var req supplierRequest
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
	var req supplierRequest
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
	s, err := h.svc.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	respond.JSON(w, r, http.StatusOK, supplierToResponse(s))
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
		model.SuppliersFilter{Status: model.Status(q.Get("status"))},
		model.Pagination{Page: page, Limit: limit},
	)
	if err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	respond.JSON(w, r, http.StatusOK, pagedSuppliersToResponse(res))
}

func mapErrorStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidArgument), errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrSupplierNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
