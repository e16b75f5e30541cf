package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/klueko/sheos/internal/domain"
	"github.com/klueko/sheos/internal/repository"
	"github.com/klueko/sheos/internal/service"
	"github.com/klueko/sheos/pkg/httputil"
	"github.com/klueko/sheos/pkg/pagination"
	"github.com/klueko/sheos/pkg/queryparam"
)

// CatalogService is the read surface the handlers need. It is implemented by
// *service.CatalogService.
type CatalogService interface {
	ListCatalog(ctx context.Context, filter repository.CatalogFilter, sort repository.Sort, page repository.Page) (*service.CatalogPage, error)
	GetProductDetail(ctx context.Context, slug string) (*domain.ProductDetail, error)
	ListLegacy(ctx context.Context, page repository.Page) ([]domain.ListingRow, error)
}

// CatalogHandler handles the catalog listing and product detail endpoints.
type CatalogHandler struct {
	service CatalogService
	paging  pagination.Options
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(svc CatalogService, paging pagination.Options, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		paging:  paging,
		logger:  logger,
	}
}

// CatalogResponse is the catalog listing body.
type CatalogResponse struct {
	Products   []domain.ListItem `json:"products"`
	Pagination pagination.Meta   `json:"pagination"`
}

// ProductResponse is the product detail body.
type ProductResponse struct {
	Product *domain.ProductDetail `json:"product"`
}

// ListCatalog handles GET /catalog.
func (h *CatalogHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := pagination.FromPage(q, h.paging)
	filter := parseCatalogFilter(q)
	sort := repository.ParseSort(q.Get("sort"), q.Get("order"))

	page, err := h.service.ListCatalog(r.Context(), filter, sort, repository.Page{
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, CatalogResponse{
		Products:   page.Items,
		Pagination: pagination.NewMeta(params.Page, params.Limit, page.Total),
	})
}

// GetProduct handles GET /catalog/{slug}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.GetProductDetail(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ProductResponse{Product: detail})
}

// parseCatalogFilter reads the optional filter parameters. Parameters that
// are absent or carry no usable number are left unset rather than rejected.
func parseCatalogFilter(q url.Values) repository.CatalogFilter {
	f := repository.CatalogFilter{
		Vegan:    queryparam.Flag(q.Get("vegan")),
		SteelToe: queryparam.Flag(q.Get("steel_toe")),
	}

	if v := q.Get("search"); v != "" {
		f.Search = &v
	}
	f.BrandID = optionalInt64(q.Get("brand"))
	f.CategoryID = optionalInt64(q.Get("category"))
	f.MinPrice = optionalDecimal(q.Get("min_price"))
	f.MaxPrice = optionalDecimal(q.Get("max_price"))

	return f
}

func optionalInt64(raw string) *int64 {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	v, usedDefault := queryparam.Int64(raw, 0)
	if usedDefault {
		return nil
	}
	return &v
}

func optionalDecimal(raw string) *decimal.Decimal {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	v, usedDefault := queryparam.Decimal(raw, decimal.Zero)
	if usedDefault {
		return nil
	}
	return &v
}
