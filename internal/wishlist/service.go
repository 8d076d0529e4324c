package wishlist

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lucashenriquez/exclusive-backend/internal/catalog"
	pkgerrors "github.com/lucashenriquez/exclusive-backend/pkg/errors"
)

// Service exposes the wishlist operations of the storefront.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) (*WishlistDTO, error)
	Add(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*WishlistDTO, error)
	Remove(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*WishlistDTO, error)
	Toggle(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*WishlistDTO, error)
	Contains(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (bool, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type entryStore interface {
	Load(ctx context.Context, userID uuid.UUID) []Entry
	Save(ctx context.Context, userID uuid.UUID, entries []Entry) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type productCatalog interface {
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.ProductView, error)
}

// ServiceParams wires the wishlist service dependencies.
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
		return nil, fmt.Errorf("wishlist service requires a store")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("wishlist service requires a catalog")
	}
	return &service{store: params.Store, catalog: params.Catalog}, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) (*WishlistDTO, error) {
	entries := s.store.Load(ctx, userID)
	return s.buildDTO(ctx, entries)
}

// Add saves the product. Adding a product that is already saved is a no-op.
func (s *service) Add(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*WishlistDTO, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	if _, err := s.catalog.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	entries := s.store.Load(ctx, userID)
	if !contains(entries, productID) {
		entries = append(entries, Entry{ProductID: productID, AddedAt: time.Now().UTC()})
		if err := s.store.Save(ctx, userID, entries); err != nil {
			return nil, err
		}
	}
	return s.buildDTO(ctx, entries)
}

// Remove drops the product. Removing an absent product is a no-op.
func (s *service) Remove(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*WishlistDTO, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}

	entries := s.store.Load(ctx, userID)
	trimmed := without(entries, productID)
	if len(trimmed) != len(entries) {
		if err := s.store.Save(ctx, userID, trimmed); err != nil {
			return nil, err
		}
	}
	return s.buildDTO(ctx, trimmed)
}

// Toggle adds the product when absent and removes it when present.
func (s *service) Toggle(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*WishlistDTO, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	entries := s.store.Load(ctx, userID)
	if contains(entries, productID) {
		return s.Remove(ctx, userID, productID)
	}
	return s.Add(ctx, userID, productID)
}

func (s *service) Contains(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (bool, error) {
	if productID == uuid.Nil {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	entries := s.store.Load(ctx, userID)
	return contains(entries, productID), nil
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.store.Delete(ctx, userID)
}

func (s *service) buildDTO(ctx context.Context, entries []Entry) (*WishlistDTO, error) {
	items := make([]ItemDTO, 0, len(entries))
	for _, entry := range entries {
		item := ItemDTO{ProductID: entry.ProductID, AddedAt: entry.AddedAt}
		product, err := s.catalog.GetByID(ctx, entry.ProductID)
		if err == nil {
			item.Product = product
		} else if pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
			return nil, err
		}
		items = append(items, item)
	}
	return &WishlistDTO{Items: items, Count: len(items)}, nil
}
