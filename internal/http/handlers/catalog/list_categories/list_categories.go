package listcategories

import (
	"net/http"
	"swapcloset/internal/core/domain/catalog"
	e "swapcloset/internal/core/domain/errors"
	"swapcloset/internal/core/services"
	service "swapcloset/internal/core/services/list_categories"
	"swapcloset/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

type Result struct {
	Categories []Category `json:"categories"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	respCategories := make([]Category, 0, len(result.Categories))
	for _, category := range result.Categories {
		respCategories = append(respCategories, fromDomainCategory(category))
	}
	response.Render(rw, Result{Categories: respCategories}, http.StatusOK)
}

func fromDomainCategory(dc catalog.Category) Category {
	return Category{
		ID:          int64(dc.ID),
		Name:        dc.Name,
		Slug:        dc.Slug,
		Description: dc.Description,
		IsActive:    dc.IsActive,
	}
}
