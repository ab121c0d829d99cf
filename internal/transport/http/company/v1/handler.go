package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chwpym/autoreturns/internal/model"
	"github.com/chwpym/autoreturns/internal/transport/http/respond"
)

type CompanyService interface {
	Get(ctx context.Context) (*model.Company, error)
	Save(ctx context.Context, c *model.Company) error
}

type handler struct {
	svc CompanyService
}

func NewCompanyHandler(service CompanyService) *handler {
	return &handler{svc: service}
}

func (h *handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.save)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, companyToResponse(c))
}

func (h *handler) save(w http.ResponseWriter, r *http.Request) {
	var req companyDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if err := h.svc.Save(r.Context(), req.toModel()); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type companyDTO struct {
	Name    string `json:"nome"`
	Address string `json:"endereco,omitempty"`
	Phone   string `json:"telefone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"site,omitempty"`
	TaxID   string `json:"cnpj,omitempty"`
	LogoURL string `json:"logo,omitempty"`
}

func (req companyDTO) toModel() *model.Company {
	return &model.Company{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
		Website: req.Website,
		TaxID:   req.TaxID,
		LogoURL: req.LogoURL,
	}
}

func companyToResponse(c *model.Company) companyDTO {
	return companyDTO{
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
		Website: c.Website,
		TaxID:   c.TaxID,
		LogoURL: c.LogoURL,
	}
}
