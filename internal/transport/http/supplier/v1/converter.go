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

type supplierRequest struct {
	LegalName string `json:"razaoSocial"`
	TradeName string `json:"nomeFantasia"`
	TaxID     string `json:"cnpj"`
	Status    string `json:"status"`
	Note      string `json:"observacao"`
}

func (req supplierRequest) toModel(id string) *model.Supplier {
	return &model.Supplier{
		ID:        id,
		LegalName: req.LegalName,
		TradeName: req.TradeName,
		TaxID:     req.TaxID,
		Status:    model.Status(req.Status),
		Note:      req.Note,
	}
}

type supplierResponse struct {
	ID        string     `json:"id"`
	LegalName string     `json:"razaoSocial"`
	TradeName string     `json:"nomeFantasia,omitempty"`
	TaxID     string     `json:"cnpj"`
	Status    string     `json:"status"`
	Note      string     `json:"observacao,omitempty"`
	CreatedAt *time.Time `json:"dataCadastro,omitempty"`
}

func supplierToResponse(s *model.Supplier) supplierResponse {
	return supplierResponse{
		ID:        s.ID,
		LegalName: s.LegalName,
		TradeName: s.TradeName,
		TaxID:     s.TaxID,
		Status:    string(s.Status),
		Note:      s.Note,
		CreatedAt: s.CreatedAt,
	}
}

type pagedResponse struct {
	Items []supplierResponse `json:"items"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

func pagedSuppliersToResponse(p *model.Paged[*model.Supplier]) pagedResponse {
	items := make([]supplierResponse, len(p.Items))
	for i, s := range p.Items {
		items[i] = supplierToResponse(s)
	}
	return pagedResponse{Items: items, Total: p.Total, Page: p.Page, Limit: p.Limit}
}
