package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lucashenriquez/exclusive-backend/internal/cart"
	"github.com/lucashenriquez/exclusive-backend/internal/catalog"
	"github.com/lucashenriquez/exclusive-backend/internal/notifications"
	"github.com/lucashenriquez/exclusive-backend/internal/orders"
	"github.com/lucashenriquez/exclusive-backend/pkg/db/models"
	"github.com/lucashenriquez/exclusive-backend/pkg/enums"
	pkgerrors "github.com/lucashenriquez/exclusive-backend/pkg/errors"
	"github.com/lucashenriquez/exclusive-backend/pkg/logger"
	"github.com/lucashenriquez/exclusive-backend/pkg/outbox"
	"github.com/lucashenriquez/exclusive-backend/pkg/outbox/payloads"
)

// BillingDetails is the billing snapshot captured at checkout.
type BillingDetails struct {
	FirstName     string  `json:"first_name" validate:"required,min=1,max=120"`
	LastName      *string `json:"last_name" validate:"omitempty,max=120"`
	CompanyName   *string `json:"company_name" validate:"omitempty,max=200"`
	StreetAddress string  `json:"street_address" validate:"required,max=300"`
	Apartment     *string `json:"apartment" validate:"omitempty,max=120"`
	TownCity      string  `json:"town_city" validate:"required,max=120"`
	Phone         string  `json:"phone" validate:"required,max=32"`
	Email         string  `json:"email" validate:"required,email"`
	SaveInfo      bool    `json:"save_info"`
}

// Request places an order from the caller's current cart.
type Request struct {
	Billing       BillingDetails      `json:"billing"`
	PaymentMethod enums.PaymentMethod `json:"payment_method" validate:"required"`
}

// Service turns a cart into a placed order.
type Service interface {
	Execute(ctx context.Context, userID uuid.UUID, req Request) (*orders.OrderDetailDTO, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cartAccessor interface {
	Snapshot(ctx context.Context, userID uuid.UUID) ([]cart.Entry, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type productCatalog interface {
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.ProductView, error)
}

type outboxEmitter interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type toaster interface {
	Show(userID uuid.UUID, message string, severity enums.ToastSeverity) (*notifications.Toast, error)
}

// ServiceParams wires the checkout dependencies.
type ServiceParams struct {
	DB      txRunner
	Cart    cartAccessor
	Catalog productCatalog
	Orders  *orders.Repository
	Outbox  outboxEmitter
	Toasts  toaster
	Logger  *logger.Logger
}

type service struct {
	db      txRunner
	cart    cartAccessor
	catalog productCatalog
	orders  *orders.Repository
	outbox  outboxEmitter
	toasts  toaster
	logg    *logger.Logger
}

func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("checkout service requires a db client")
	}
	if params.Cart == nil {
		return nil, fmt.Errorf("checkout service requires a cart accessor")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("checkout service requires a catalog")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("checkout service requires an orders repository")
	}
	if params.Outbox == nil {
		return nil, fmt.Errorf("checkout service requires an outbox emitter")
	}
	return &service{
		db:      params.DB,
		cart:    params.Cart,
		catalog: params.Catalog,
		orders:  params.Orders,
		outbox:  params.Outbox,
		toasts:  params.Toasts,
		logg:    params.Logger,
	}, nil
}

// Execute validates the billing details and the cart, writes the order and
// its outbox event in one transaction, then clears the cart. On failure the
// cart is left untouched.
func (s *service) Execute(ctx context.Context, userID uuid.UUID, req Request) (*orders.OrderDetailDTO, error) {
	if err := validateBilling(req.Billing); err != nil {
		return nil, s.reject(userID, err)
	}
	if !req.PaymentMethod.IsValid() {
		return nil, s.reject(userID, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method"))
	}

	entries, err := s.cart.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, s.reject(userID, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty"))
	}

	order, err := s.buildOrder(ctx, userID, req, entries)
	if err != nil {
		s.showToast(userID, "Checkout failed", enums.ToastSeverityError)
		return nil, err
	}

	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.orders.WithTx(tx).Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}
		event := outbox.DomainEvent{
			EventType:     enums.EventOrderCreated,
			AggregateType: enums.AggregateOrder,
			AggregateID:   order.ID,
			Actor:         &outbox.ActorRef{UserID: userID, Email: req.Billing.Email},
			Data: payloads.OrderCreatedEvent{
				OrderID:       order.ID,
				UserID:        userID,
				Total:         order.Total,
				ItemCount:     cart.Count(entries),
				PaymentMethod: order.PaymentMethod,
			},
			Version: 1,
		}
		if err := s.outbox.Emit(ctx, tx, event); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "emit order created event")
		}
		return nil
	})
	if err != nil {
		s.showToast(userID, "Checkout failed", enums.ToastSeverityError)
		return nil, err
	}

	// The order is committed; a failed cart clear must not undo it.
	if err := s.cart.Clear(ctx, userID); err != nil && s.logg != nil {
		logCtx := s.logg.WithOrderID(s.logg.WithUserID(ctx, userID.String()), order.ID.String())
		s.logg.Warn(logCtx, "cart clear failed after checkout")
	}
	s.showToast(userID, "Order placed", enums.ToastSeveritySuccess)

	return orders.DetailFromModel(*order), nil
}

func (s *service) buildOrder(ctx context.Context, userID uuid.UUID, req Request, entries []cart.Entry) (*models.Order, error) {
	items := make([]models.OrderItem, 0, len(entries))
	subtotal := decimal.Zero
	for _, entry := range entries {
		product, err := s.catalog.GetByID(ctx, entry.ProductID)
		if err != nil {
			if pkgerrors.As(err).Code() == pkgerrors.CodeNotFound {
				return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "a cart item is no longer available")
			}
			return nil, err
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		items = append(items, models.OrderItem{
			ID:            uuid.New(),
			ProductID:     product.ID,
			ProductName:   product.Name,
			ImageURL:      product.ImageURL,
			UnitPrice:     product.Price,
			Quantity:      entry.Quantity,
			SelectedColor: entry.SelectedColor,
			SelectedSize:  entry.SelectedSize,
			LineTotal:     lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	now := time.Now().UTC()
	return &models.Order{
		ID:             uuid.New(),
		UserID:         userID,
		Status:         enums.OrderStatusPending,
		Subtotal:       subtotal,
		ShippingFee:    decimal.Zero,
		Total:          subtotal,
		PaymentMethod:  req.PaymentMethod,
		BillingName:    billingName(req.Billing),
		BillingEmail:   strings.TrimSpace(strings.ToLower(req.Billing.Email)),
		BillingPhone:   strings.TrimSpace(req.Billing.Phone),
		StreetAddress:  strings.TrimSpace(req.Billing.StreetAddress),
		Apartment:      req.Billing.Apartment,
		TownCity:       strings.TrimSpace(req.Billing.TownCity),
		CompanyName:    req.Billing.CompanyName,
		SaveBillingFor: req.Billing.SaveInfo,
		Items:          items,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// reject surfaces a validation failure as an error toast before returning it.
func (s *service) reject(userID uuid.UUID, err error) error {
	s.showToast(userID, pkgerrors.As(err).Message(), enums.ToastSeverityError)
	return err
}

func (s *service) showToast(userID uuid.UUID, message string, severity enums.ToastSeverity) {
	if s.toasts == nil {
		return
	}
	// Toasts are best effort, a failed notification never fails the checkout.
	_, _ = s.toasts.Show(userID, message, severity)
}

func validateBilling(billing BillingDetails) error {
	if strings.TrimSpace(billing.FirstName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "first name required")
	}
	if strings.TrimSpace(billing.StreetAddress) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "street address required")
	}
	if strings.TrimSpace(billing.TownCity) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "town or city required")
	}
	if strings.TrimSpace(billing.Phone) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "phone required")
	}
	if strings.TrimSpace(billing.Email) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "email required")
	}
	return nil
}

func billingName(billing BillingDetails) string {
	name := strings.TrimSpace(billing.FirstName)
	if billing.LastName != nil {
		if last := strings.TrimSpace(*billing.LastName); last != "" {
			name = name + " " + last
		}
	}
	return name
}
