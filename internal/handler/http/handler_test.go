package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/klueko/sheos/internal/domain"
	"github.com/klueko/sheos/internal/repository"
	"github.com/klueko/sheos/internal/service"
	"github.com/klueko/sheos/pkg/health"
	"github.com/klueko/sheos/pkg/pagination"
)

// --- Mock Service ---

type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) ListCatalog(ctx context.Context, filter repository.CatalogFilter, sort repository.Sort, page repository.Page) (*service.CatalogPage, error) {
	args := m.Called(ctx, filter, sort, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CatalogPage), args.Error(1)
}

func (m *mockCatalogService) GetProductDetail(ctx context.Context, slug string) (*domain.ProductDetail, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductDetail), args.Error(1)
}

func (m *mockCatalogService) ListLegacy(ctx context.Context, page repository.Page) ([]domain.ListingRow, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ListingRow), args.Error(1)
}

// --- Test Helpers ---

func testRouterConfig() RouterConfig {
	return RouterConfig{
		ServiceName:    "catalog-test",
		AllowedOrigins: []string{"*"},
		CatalogPaging:  pagination.Options{DefaultLimit: 20, MaxLimit: 100},
		LegacyPaging:   pagination.Options{DefaultLimit: 50, MaxLimit: 100},
	}
}

func newTestRouter(svc *mockCatalogService, cfg RouterConfig) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(svc, health.NewHandler(), cfg, logger)
}

func doGet(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	}
	return rec, body
}

func strPtr(s string) *string { return &s }
func int64Ptr(n int64) *int64 { return &n }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

var created = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleRows() []domain.ListingRow {
	return []domain.ListingRow{
		{
			ID: 1, Name: "Trail Runner", Slug: "trail-runner", Price: "129.99", CreatedAt: created,
			BrandID: 3, BrandName: "Acme", ImageURL: strPtr("https://cdn.example/tr.jpg"), Stock: int64Ptr(8),
		},
		{
			ID: 2, Name: "Work Boot", Slug: "", Price: "89.50", CompareAtPrice: strPtr("99.00"), CreatedAt: created,
			BrandID: 4, BrandName: "Forge", HasSteelToe: true,
		},
	}
}
