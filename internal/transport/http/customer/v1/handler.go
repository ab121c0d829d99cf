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

type CustomerService interface {
	Create(ctx context.Context, c *model.Customer) (string, error)
	Update(ctx context.Context, c *model.Customer) error
	ByID(ctx context.Context, id string) (*model.Customer, error)
	SetStatus(ctx context.Context, id string, status model.Status) error
	List(ctx context.Context, filter model.CustomersFilter, pg model.Pagination) (*model.Paged[*model.Customer], error)
}

type handler struct {
	svc CustomerService
}

func NewCustomerHandler(service CustomerService) *handler {
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
	var req customerRequest
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
	var req customerRequest
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
	c, err := h.svc.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	respond.JSON(w, r, http.StatusOK, customerToResponse(c))
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

	filter := model.CustomersFilter{
		Status:       model.Status(q.Get("status")),
		OnlyCustomer: q.Get("tipo") == "cliente",
		OnlyMechanic: q.Get("tipo") == "mecanico",
	}

	res, err := h.svc.List(r.Context(), filter, pagination(q.Get("page"), q.Get("limit")))
	if err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	respond.JSON(w, r, http.StatusOK, pagedCustomersToResponse(res))
}

func pagination(page, limit string) model.Pagination {
	p, _ := strconv.Atoi(page)
	l, _ := strconv.Atoi(limit)
	return model.Pagination{Page: p, Limit: l}
}

func mapErrorStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidArgument), errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrCustomerNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
