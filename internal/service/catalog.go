package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/klueko/sheos/internal/domain"
	"github.com/klueko/sheos/internal/repository"
	"github.com/klueko/sheos/pkg/tracing"
)

var tracer = tracing.Tracer("github.com/klueko/sheos/internal/service")

// CatalogService assembles the catalog listing, product detail and legacy
// listing from repository reads.
type CatalogService struct {
	listings repository.ListingRepository
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(listings repository.ListingRepository, products repository.ProductRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		listings: listings,
		products: products,
		logger:   logger,
	}
}

// CatalogPage is one page of the catalog listing plus the total number of
// matching products.
type CatalogPage struct {
	Items []domain.ListItem
	Total int
}

// ListCatalog runs the page query and the count query concurrently. If either
// fails the other is cancelled and the error is returned.
func (s *CatalogService) ListCatalog(ctx context.Context, filter repository.CatalogFilter, sort repository.Sort, page repository.Page) (*CatalogPage, error) {
	ctx, span := tracer.Start(ctx, "CatalogService.ListCatalog", trace.WithAttributes(
		attribute.String("catalog.sort", string(sort.Field)),
		attribute.Bool("catalog.sort_asc", sort.Ascending),
		attribute.Int("catalog.limit", page.Limit),
		attribute.Int("catalog.offset", page.Offset),
	))
	defer span.End()

	var (
		rows  []domain.ListingRow
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.listings.ListCatalog(gctx, filter, sort, page)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.listings.CountCatalog(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	items := make([]domain.ListItem, len(rows))
	for i, row := range rows {
		items[i] = row.ToListItem()
	}

	s.logger.DebugContext(ctx, "catalog page loaded",
		slog.Int("items", len(items)),
		slog.Int("total", total),
	)

	return &CatalogPage{Items: items, Total: total}, nil
}

// GetProductDetail loads an active product by slug and then its categories,
// active variants and images concurrently. A missing product is reported as
// a not-found AppError from the repository.
func (s *CatalogService) GetProductDetail(ctx context.Context, slug string) (*domain.ProductDetail, error) {
	ctx, span := tracer.Start(ctx, "CatalogService.GetProductDetail", trace.WithAttributes(
		attribute.String("product.slug", slug),
	))
	defer span.End()

	product, err := s.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	var (
		categories []domain.Category
		variants   []domain.Variant
		images     []domain.Image
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.products.ListCategories(gctx, product.ID)
		return err
	})
	g.Go(func() error {
		var err error
		variants, err = s.products.ListActiveVariants(gctx, product.ID)
		return err
	})
	g.Go(func() error {
		var err error
		images, err = s.products.ListImages(gctx, product.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load product %q details: %w", slug, err)
	}

	return domain.NewProductDetail(*product, categories, variants, images), nil
}

// ListLegacy returns one page of the unfiltered recency listing as raw rows.
func (s *CatalogService) ListLegacy(ctx context.Context, page repository.Page) ([]domain.ListingRow, error) {
	ctx, span := tracer.Start(ctx, "CatalogService.ListLegacy", trace.WithAttributes(
		attribute.Int("catalog.limit", page.Limit),
		attribute.Int("catalog.offset", page.Offset),
	))
	defer span.End()

	rows, err := s.listings.ListLegacy(ctx, page)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list legacy: %w", err)
	}
	return rows, nil
}
