package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/klueko/sheos/internal/domain"
	"github.com/klueko/sheos/internal/repository"
	"github.com/klueko/sheos/pkg/httputil"
	"github.com/klueko/sheos/pkg/pagination"
)

// LegacyHandler serves the legacy mirror listing, which keeps the response
// contract of an older external integration.
type LegacyHandler struct {
	service CatalogService
	paging  pagination.Options
	logger  *slog.Logger
}

// NewLegacyHandler creates a new legacy listing handler.
func NewLegacyHandler(svc CatalogService, paging pagination.Options, logger *slog.Logger) *LegacyHandler {
	return &LegacyHandler{
		service: svc,
		paging:  paging,
		logger:  logger,
	}
}

// LegacyRawResponse is returned unless mapped=true.
type LegacyRawResponse struct {
	Rows  []domain.ListingRow `json:"rows"`
	Count int                 `json:"count"`
}

// LegacyPagination echoes the window and the number of items returned.
type LegacyPagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

// LegacyMappedResponse is returned for mapped=true.
type LegacyMappedResponse struct {
	Products   []domain.LegacyProduct `json:"products"`
	Pagination LegacyPagination       `json:"pagination"`
}

// List handles GET /legacy-listing.
func (h *LegacyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := pagination.FromOffset(q, h.paging)
	mapped := strings.EqualFold(q.Get("mapped"), "true")

	rows, err := h.service.ListLegacy(r.Context(), repository.Page{
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if rows == nil {
		rows = []domain.ListingRow{}
	}

	if !mapped {
		httputil.WriteJSON(w, http.StatusOK, LegacyRawResponse{Rows: rows, Count: len(rows)})
		return
	}

	products := make([]domain.LegacyProduct, len(rows))
	for i, row := range rows {
		products[i] = row.ToLegacyProduct()
	}

	httputil.WriteJSON(w, http.StatusOK, LegacyMappedResponse{
		Products: products,
		Pagination: LegacyPagination{
			Limit:  params.Limit,
			Offset: params.Offset,
			Count:  len(products),
		},
	})
}
