package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucashenriquez/exclusive-backend/pkg/config"
	"github.com/lucashenriquez/exclusive-backend/pkg/db/models"
	"github.com/lucashenriquez/exclusive-backend/pkg/enums"
	pkgerrors "github.com/lucashenriquez/exclusive-backend/pkg/errors"
	"github.com/lucashenriquez/exclusive-backend/pkg/pagination"
)

// Ranked sections sort in memory, so the repo fetch has to overshoot the
// configured section size.
const derivedFetchFactor = 4

// Service exposes the read-only catalog surface.
type Service interface {
	List(ctx context.Context, params ListParams) (*ProductListResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FlashSale(ctx context.Context) ([]ProductView, error)
	BestSelling(ctx context.Context) ([]ProductView, error)
	Related(ctx context.Context, productID uuid.UUID) ([]ProductView, error)
}

// ListParams captures the query-string inputs of the product listing.
type ListParams struct {
	Limit    int
	Cursor   string
	Category string
	Search   string
}

type repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, query ListQuery) ([]models.Product, string, error)
	ListDiscounted(ctx context.Context, max int) ([]models.Product, error)
	ListTopReviewed(ctx context.Context, max int) ([]models.Product, error)
	ListByCategory(ctx context.Context, category enums.ProductCategory, excludeID uuid.UUID, max int) ([]models.Product, error)
}

type service struct {
	repo repository
	cfg  config.StorefrontConfig
}

// NewService builds the catalog service.
func NewService(repo repository, cfg config.StorefrontConfig) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog repository required")
	}
	return &service{repo: repo, cfg: cfg}, nil
}

func (s *service) List(ctx context.Context, params ListParams) (*ProductListResult, error) {
	if _, err := pagination.ParseCursor(params.Cursor); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	query := ListQuery{
		Pagination: pagination.Params{Limit: params.Limit, Cursor: params.Cursor},
		Search:     params.Search,
	}
	if raw := strings.TrimSpace(params.Category); raw != "" {
		category, err := enums.ParseProductCategory(raw)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
		query.Category = &category
	}

	rows, nextCursor, err := s.repo.ListProducts(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	return &ProductListResult{
		Products:   viewsFromModels(rows),
		NextCursor: nextCursor,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	view := FromModel(*product)
	return &view, nil
}

func (s *service) FlashSale(ctx context.Context) ([]ProductView, error) {
	limit := s.cfg.FlashSaleLimit
	rows, err := s.repo.ListDiscounted(ctx, limit*derivedFetchFactor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list discounted products")
	}
	return FlashSale(viewsFromModels(rows), limit), nil
}

func (s *service) BestSelling(ctx context.Context) ([]ProductView, error) {
	limit := s.cfg.BestSellingLimit
	rows, err := s.repo.ListTopReviewed(ctx, limit*derivedFetchFactor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list top reviewed products")
	}
	return BestSelling(viewsFromModels(rows), limit), nil
}

func (s *service) Related(ctx context.Context, productID uuid.UUID) ([]ProductView, error) {
	subject, err := s.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	limit := s.cfg.RelatedLimit
	rows, err := s.repo.ListByCategory(ctx, subject.Category, productID, limit*derivedFetchFactor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list related products")
	}
	return Related(viewsFromModels(rows), productID, subject.Category, limit), nil
}

func viewsFromModels(rows []models.Product) []ProductView {
	views := make([]ProductView, 0, len(rows))
	for _, row := range rows {
		views = append(views, FromModel(row))
	}
	return views
}
