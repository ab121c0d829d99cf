package v1

import (
	"time"

	"github.com/chwpym/autoreturns/internal/model"
)

type createdResponse struct {
	ID string `json:"id"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type customerTypeDTO struct {
	Customer bool `json:"cliente"`
	Mechanic bool `json:"mecanico"`
}

type customerRequest struct {
	Name      string          `json:"nomeRazaoSocial"`
	TradeName string          `json:"apelidoFantasia"`
	Type      customerTypeDTO `json:"tipo"`
	Status    string          `json:"status"`
	Note      string          `json:"observacao"`
}

func (req customerRequest) toModel(id string) *model.Customer {
	return &model.Customer{
		ID:        id,
		Name:      req.Name,
		TradeName: req.TradeName,
		Type: model.CustomerType{
			Customer: req.Type.Customer,
			Mechanic: req.Type.Mechanic,
		},
		Status: model.Status(req.Status),
		Note:   req.Note,
	}
}

type customerResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"nomeRazaoSocial"`
	TradeName string          `json:"apelidoFantasia,omitempty"`
	Type      customerTypeDTO `json:"tipo"`
	Status    string          `json:"status"`
	Note      string          `json:"observacao,omitempty"`
	CreatedAt *time.Time      `json:"dataCadastro,omitempty"`
}

func customerToResponse(c *model.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		Name:      c.Name,
		TradeName: c.TradeName,
		Type: customerTypeDTO{
			Customer: c.Type.Customer,
			Mechanic: c.Type.Mechanic,
		},
		Status:    string(c.Status),
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
	}
}

type pagedResponse struct {
	Items []customerResponse `json:"items"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

func pagedCustomersToResponse(p *model.Paged[*model.Customer]) pagedResponse {
	items := make([]customerResponse, len(p.Items))
	for i, c := range p.Items {
		items[i] = customerToResponse(c)
	}
	return pagedResponse{Items: items, Total: p.Total, Page: p.Page, Limit: p.Limit}
}
