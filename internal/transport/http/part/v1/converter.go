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

type partRequest struct {
	Code        string `json:"codigoPeca"`
	Description string `json:"descricao"`
	Status      string `json:"status"`
	Note        string `json:"observacao"`
}

func (req partRequest) toModel(id string) *model.Part {
	return &model.Part{
		ID:          id,
		Code:        req.Code,
		Description: req.Description,
		Status:      model.Status(req.Status),
		Note:        req.Note,
	}
}

type partResponse struct {
	ID          string     `json:"id"`
	Code        string     `json:"codigoPeca"`
	Description string     `json:"descricao"`
	Status      string     `json:"status"`
	Note        string     `json:"observacao,omitempty"`
	CreatedAt   *time.Time `json:"dataCadastro,omitempty"`
}

func partToResponse(p *model.Part) partResponse {
	return partResponse{
		ID:          p.ID,
		Code:        p.Code,
		Description: p.Description,
		Status:      string(p.Status),
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
	}
}

type pagedResponse struct {
	Items []partResponse `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func pagedPartsToResponse(p *model.Paged[*model.Part]) pagedResponse {
	items := make([]partResponse, len(p.Items))
	for i, part := range p.Items {
		items[i] = partToResponse(part)
	}
	return pagedResponse{Items: items, Total: p.Total, Page: p.Page, Limit: p.Limit}
}
