package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucashenriquez/exclusive-backend/pkg/db/models"
	"github.com/lucashenriquez/exclusive-backend/pkg/enums"
	"github.com/lucashenriquez/exclusive-backend/pkg/pagination"
)

// ListQuery configures the paginated product listing.
type ListQuery struct {
	Pagination pagination.Params
	Category   *enums.ProductCategory
	Search     string
}

// Repository encapsulates catalog persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// FindByID loads a single product.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts returns a cursor-paginated page of products, newest first.
func (r *Repository) ListProducts(ctx context.Context, query ListQuery) ([]models.Product, string, error) {
	pageSize := pagination.NormalizeLimit(query.Pagination.Limit)
	limitWithBuffer := pagination.LimitWithBuffer(query.Pagination.Limit)

	cursor, err := pagination.ParseCursor(query.Pagination.Cursor)
	if err != nil {
		return nil, "", err
	}

	qb := r.db.WithContext(ctx).Model(&models.Product{})
	if query.Category != nil {
		qb = qb.Where("category = ?", *query.Category)
	}
	if search := strings.TrimSpace(query.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		qb = qb.Where("LOWER(name) LIKE ?", pattern)
	}
	if cursor != nil {
		qb = qb.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Product
	if err := qb.Order("created_at DESC").Order("id DESC").Limit(limitWithBuffer).Find(&rows).Error; err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(rows) > pageSize {
		rows = rows[:pageSize]
		last := rows[len(rows)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return rows, nextCursor, nil
}

// ListDiscounted returns products currently marked below their original price.
func (r *Repository) ListDiscounted(ctx context.Context, max int) ([]models.Product, error) {
	var rows []models.Product
	qb := r.db.WithContext(ctx).
		Where("original_price IS NOT NULL AND original_price > price").
		Order("created_at DESC")
	if max > 0 {
		qb = qb.Limit(max)
	}
	if err := qb.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListTopReviewed returns products ordered by review volume.
func (r *Repository) ListTopReviewed(ctx context.Context, max int) ([]models.Product, error) {
	var rows []models.Product
	qb := r.db.WithContext(ctx).Order("review_count DESC").Order("id DESC")
	if max > 0 {
		qb = qb.Limit(max)
	}
	if err := qb.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByCategory returns category peers, optionally excluding one product.
func (r *Repository) ListByCategory(ctx context.Context, category enums.ProductCategory, excludeID uuid.UUID, max int) ([]models.Product, error) {
	qb := r.db.WithContext(ctx).Where("category = ?", category)
	if excludeID != uuid.Nil {
		qb = qb.Where("id <> ?", excludeID)
	}
	qb = qb.Order("created_at DESC")
	if max > 0 {
		qb = qb.Limit(max)
	}
	var rows []models.Product
	if err := qb.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
