package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/gst-server/internal/gst"
)

// Category is a catalog entry.
type Category struct {
	Name         string `json:"name" doc:"Category name, also used as its id"`
	Type         string `json:"type" enum:"income,expense"`
	IncludeInGST bool   `json:"includeInGST" doc:"Whether transactions in this category count towards GST totals"`
	GSTIncluded  bool   `json:"defaultGSTIncluded" doc:"Initial GST-included toggle for new transactions"`
}

type ListCategoriesInput struct {
	Type string `query:"type" enum:"income,expense" doc:"Only return categories of this type"`
}

type ListCategoriesResponseBody struct {
	Categories []Category `json:"categories"`
}

type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// ListCategoriesHandler handles GET /v1/categories. The catalog is static.
type ListCategoriesHandler struct{}

func NewListCategoriesHandler() *ListCategoriesHandler {
	return &ListCategoriesHandler{}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(_ context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories := gst.Categories()
	if input.Type != "" {
		categories = gst.CategoriesOfType(gst.ParseTransactionType(input.Type))
	}

	resp := ListCategoriesResponseBody{Categories: make([]Category, len(categories))}
	for i, c := range categories {
		resp.Categories[i] = Category{
			Name:         c.Name,
			Type:         string(c.Type),
			IncludeInGST: c.IncludeInGST,
			GSTIncluded:  gst.DefaultGSTIncluded(c.Name),
		}
	}
	return &ListCategoriesOutput{Body: resp}, nil
}
