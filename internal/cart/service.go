package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucashenriquez/exclusive-backend/internal/catalog"
	pkgerrors "github.com/lucashenriquez/exclusive-backend/pkg/errors"
)

// Service exposes the cart operations of the storefront.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*CartDTO, error)
	Add(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartDTO, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, req UpdateQuantityRequest) (*CartDTO, error)
	Remove(ctx context.Context, userID uuid.UUID, productID uuid.UUID, color, size *string) (*CartDTO, error)
	Clear(ctx context.Context, userID uuid.UUID) error
	Contains(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (bool, error)
	Snapshot(ctx context.Context, userID uuid.UUID) ([]Entry, error)
}

// AddItemRequest adds a product variant to the cart.
type AddItemRequest struct {
	ProductID     uuid.UUID `json:"product_id" validate:"required"`
	Quantity      int       `json:"quantity" validate:"required,min=1"`
	SelectedColor *string   `json:"selected_color" validate:"omitempty,max=64"`
	SelectedSize  *string   `json:"selected_size" validate:"omitempty,max=32"`
}

// UpdateQuantityRequest replaces the quantity of one cart line. A quantity
// below one removes the line.
type UpdateQuantityRequest struct {
	ProductID     uuid.UUID `json:"product_id" validate:"required"`
	Quantity      int       `json:"quantity"`
	SelectedColor *string   `json:"selected_color" validate:"omitempty,max=64"`
	SelectedSize  *string   `json:"selected_size" validate:"omitempty,max=32"`
}

type entryStore interface {
	Load(ctx context.Context, userID uuid.UUID) []Entry
	Save(ctx context.Context, userID uuid.UUID, entries []Entry) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type productCatalog interface {
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.ProductView, error)
}

// ServiceParams wires the cart service dependencies.
type ServiceParams struct {
	Store   entryStore
	Catalog productCatalog
}

type service struct {
	store   entryStore
	catalog productCatalog
}

func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("cart service requires a store")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("cart service requires a catalog")
	}
	return &service{store: params.Store, catalog: params.Catalog}, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	entries := s.store.Load(ctx, userID)
	return s.buildDTO(ctx, entries)
}

func (s *service) Add(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartDTO, error) {
	if req.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	if req.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	// The product has to exist before it can enter the cart; the price is
	// re-read at render and checkout time, never stored on the line.
	if _, err := s.catalog.GetByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	entries := s.store.Load(ctx, userID)
	entries = Add(entries, Entry{
		ProductID:     req.ProductID,
		SelectedColor: req.SelectedColor,
		SelectedSize:  req.SelectedSize,
		Quantity:      req.Quantity,
		AddedAt:       time.Now().UTC(),
	})
	if err := s.store.Save(ctx, userID, entries); err != nil {
		return nil, err
	}
	return s.buildDTO(ctx, entries)
}

func (s *service) UpdateQuantity(ctx context.Context, userID uuid.UUID, req UpdateQuantityRequest) (*CartDTO, error) {
	if req.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}

	entries := s.store.Load(ctx, userID)
	entries = SetQuantity(entries, req.ProductID, req.SelectedColor, req.SelectedSize, req.Quantity)
	if err := s.store.Save(ctx, userID, entries); err != nil {
		return nil, err
	}
	return s.buildDTO(ctx, entries)
}

func (s *service) Remove(ctx context.Context, userID uuid.UUID, productID uuid.UUID, color, size *string) (*CartDTO, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}

	entries := s.store.Load(ctx, userID)
	entries = Remove(entries, productID, color, size)
	if err := s.store.Save(ctx, userID, entries); err != nil {
		return nil, err
	}
	return s.buildDTO(ctx, entries)
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.store.Delete(ctx, userID)
}

func (s *service) Contains(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (bool, error) {
	if productID == uuid.Nil {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	entries := s.store.Load(ctx, userID)
	return Contains(entries, productID), nil
}

// Snapshot returns the raw cart lines, used by checkout to build order items.
func (s *service) Snapshot(ctx context.Context, userID uuid.UUID) ([]Entry, error) {
	return s.store.Load(ctx, userID), nil
}

// buildDTO joins the cart lines with their catalog products. Lines whose
// product has since disappeared stay visible but carry no price.
func (s *service) buildDTO(ctx context.Context, entries []Entry) (*CartDTO, error) {
	items := make([]ItemDTO, 0, len(entries))
	subtotal := decimal.Zero
	for _, entry := range entries {
		item := ItemDTO{
			ProductID:     entry.ProductID,
			SelectedColor: entry.SelectedColor,
			SelectedSize:  entry.SelectedSize,
			Quantity:      entry.Quantity,
			AddedAt:       entry.AddedAt,
			LineTotal:     decimal.Zero,
		}
		product, err := s.catalog.GetByID(ctx, entry.ProductID)
		if err == nil {
			item.Product = product
			item.LineTotal = product.Price.Mul(decimal.NewFromInt(int64(entry.Quantity)))
			subtotal = subtotal.Add(item.LineTotal)
		} else if pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
			return nil, err
		}
		items = append(items, item)
	}
	return &CartDTO{
		Items:    items,
		Count:    Count(entries),
		Subtotal: subtotal,
	}, nil
}
