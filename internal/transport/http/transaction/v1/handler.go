package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chwpym/autoreturns/internal/model"
	"github.com/chwpym/autoreturns/internal/transport/http/respond"
)

type TransactionService interface {
	Create(ctx context.Context, t *model.Transaction) (string, error)
	ByID(ctx context.Context, id string) (*model.Transaction, error)
	UpdateReturnAction(ctx context.Context, id string, action model.ReturnAction, creditInvoice string) error
	List(ctx context.Context, filter model.TransactionsFilter, pg model.Pagination) (*model.Paged[*model.Transaction], error)
}

type handler struct {
	svc TransactionService
}

func NewTransactionHandler(service TransactionService) *handler {
	return &handler{svc: service}
}

func (h *handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.byID)
	r.Patch("/{id}/acao-retorno", h.updateReturnAction)
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	id, err := h.svc.Create(r.Context(), req.toModel())
	if err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, createdResponse{ID: id})
}

func (h *handler) byID(w http.ResponseWriter, r *http.Request) {
	tr, err := h.svc.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	respond.JSON(w, r, http.StatusOK, transactionToResponse(tr))
}

func (h *handler) updateReturnAction(w http.ResponseWriter, r *http.Request) {
	var req returnActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	err := h.svc.UpdateReturnAction(
		r.Context(),
		chi.URLParam(r, "id"),
		model.ReturnAction(req.Action),
		req.CreditInvoice,
	)
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

	filter := model.TransactionsFilter{
		Kind:       model.TransactionKind(q.Get("tipoMovimentacao")),
		PartID:     q.Get("pecaId"),
		CustomerID: q.Get("clienteId"),
		SaleFrom:   parseDate(q.Get("dataVendaDe")),
		SaleTo:     parseDate(q.Get("dataVendaAte")),
	}

	res, err := h.svc.List(r.Context(), filter, model.Pagination{Page: page, Limit: limit})
	if err != nil {
		respond.Error(w, r, mapErrorStatus(err), err)
		return
	}

	respond.JSON(w, r, http.StatusOK, pagedTransactionsToResponse(res))
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	ts, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &ts
}

func mapErrorStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidArgument), errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrReferenceNotFound),
		errors.Is(err, model.ErrTransactionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
