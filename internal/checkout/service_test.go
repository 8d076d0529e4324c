package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lucashenriquez/exclusive-backend/internal/cart"
	"github.com/lucashenriquez/exclusive-backend/internal/catalog"
	"github.com/lucashenriquez/exclusive-backend/internal/notifications"
	"github.com/lucashenriquez/exclusive-backend/internal/orders"
	"github.com/lucashenriquez/exclusive-backend/pkg/db/models"
	"github.com/lucashenriquez/exclusive-backend/pkg/enums"
	pkgerrors "github.com/lucashenriquez/exclusive-backend/pkg/errors"
	"github.com/lucashenriquez/exclusive-backend/pkg/outbox"
)

func setupCheckoutTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	schema := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  subtotal NUMERIC NOT NULL,
  shipping_fee NUMERIC NOT NULL DEFAULT 0,
  total NUMERIC NOT NULL,
  payment_method TEXT NOT NULL,
  billing_name TEXT NOT NULL,
  billing_email TEXT NOT NULL,
  billing_phone TEXT NOT NULL,
  street_address TEXT NOT NULL,
  apartment TEXT,
  town_city TEXT NOT NULL,
  company_name TEXT,
  save_billing_for INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  product_name TEXT NOT NULL,
  image_url TEXT NOT NULL,
  unit_price NUMERIC NOT NULL,
  quantity INTEGER NOT NULL,
  selected_color TEXT,
  selected_size TEXT,
  line_total NUMERIC NOT NULL,
  created_at DATETIME
);`
	if err := db.Exec(schema).Error; err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

type sqliteTxRunner struct {
	db *gorm.DB
}

func (r *sqliteTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

type stubCart struct {
	entries []cart.Entry
	cleared bool
}

func (s *stubCart) Snapshot(ctx context.Context, userID uuid.UUID) ([]cart.Entry, error) {
	return s.entries, nil
}

func (s *stubCart) Clear(ctx context.Context, userID uuid.UUID) error {
	s.cleared = true
	return nil
}

type stubCatalog struct {
	products map[uuid.UUID]catalog.ProductView
}

func (s *stubCatalog) GetByID(ctx context.Context, id uuid.UUID) (*catalog.ProductView, error) {
	if product, ok := s.products[id]; ok {
		return &product, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

type stubOutbox struct {
	events []outbox.DomainEvent
	err    error
}

func (s *stubOutbox) Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

type stubToaster struct {
	messages   []string
	severities []enums.ToastSeverity
}

func (s *stubToaster) Show(userID uuid.UUID, message string, severity enums.ToastSeverity) (*notifications.Toast, error) {
	s.messages = append(s.messages, message)
	s.severities = append(s.severities, severity)
	return &notifications.Toast{ID: uuid.New(), Message: message, Severity: severity}, nil
}

type checkoutFixture struct {
	svc     Service
	db      *gorm.DB
	cart    *stubCart
	outbox  *stubOutbox
	toaster *stubToaster
}

func newCheckoutFixture(t *testing.T, entries []cart.Entry, products map[uuid.UUID]catalog.ProductView) *checkoutFixture {
	t.Helper()

	db := setupCheckoutTestDB(t)
	cartStub := &stubCart{entries: entries}
	outboxStub := &stubOutbox{}
	toasterStub := &stubToaster{}
	svc, err := NewService(ServiceParams{
		DB:      &sqliteTxRunner{db: db},
		Cart:    cartStub,
		Catalog: &stubCatalog{products: products},
		Orders:  orders.NewRepository(db),
		Outbox:  outboxStub,
		Toasts:  toasterStub,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return &checkoutFixture{svc: svc, db: db, cart: cartStub, outbox: outboxStub, toaster: toasterStub}
}

func validBilling() BillingDetails {
	return BillingDetails{
		FirstName:     "Jordan",
		StreetAddress: "12 Market St",
		TownCity:      "Springfield",
		Phone:         "+15550100",
		Email:         "jordan@example.com",
	}
}

func TestExecutePlacesOrder(t *testing.T) {
	productID := uuid.New()
	color := "red"
	entries := []cart.Entry{{ProductID: productID, SelectedColor: &color, Quantity: 2}}
	products := map[uuid.UUID]catalog.ProductView{
		productID: {ID: productID, Name: "Wireless Headset", ImageURL: "https://cdn.example.com/h.jpg", Price: decimal.NewFromInt(30)},
	}
	fixture := newCheckoutFixture(t, entries, products)
	userID := uuid.New()

	detail, err := fixture.svc.Execute(context.Background(), userID, Request{
		Billing:       validBilling(),
		PaymentMethod: enums.PaymentMethodCashOnDelivery,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !detail.Total.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("expected total 60, got %s", detail.Total)
	}
	if len(detail.Items) != 1 || detail.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", detail.Items)
	}
	if detail.Status != enums.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", detail.Status)
	}

	var count int64
	if err := fixture.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 persisted order, got %d", count)
	}

	if len(fixture.outbox.events) != 1 {
		t.Fatalf("expected 1 outbox event, got %d", len(fixture.outbox.events))
	}
	if fixture.outbox.events[0].EventType != enums.EventOrderCreated {
		t.Fatalf("unexpected event type %s", fixture.outbox.events[0].EventType)
	}

	if !fixture.cart.cleared {
		t.Fatal("expected cart cleared after checkout")
	}
	if len(fixture.toaster.severities) != 1 || fixture.toaster.severities[0] != enums.ToastSeveritySuccess {
		t.Fatalf("expected success toast, got %+v", fixture.toaster.severities)
	}
}

func TestExecuteRejectsEmptyCart(t *testing.T) {
	fixture := newCheckoutFixture(t, nil, nil)

	_, err := fixture.svc.Execute(context.Background(), uuid.New(), Request{
		Billing:       validBilling(),
		PaymentMethod: enums.PaymentMethodBank,
	})
	if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if fixture.cart.cleared {
		t.Fatal("cart must stay untouched on failure")
	}
	if len(fixture.toaster.severities) != 1 || fixture.toaster.severities[0] != enums.ToastSeverityError {
		t.Fatalf("expected error toast on empty cart, got %+v", fixture.toaster.severities)
	}
	if fixture.toaster.messages[0] != "cart is empty" {
		t.Fatalf("unexpected toast message %q", fixture.toaster.messages[0])
	}
}

func TestExecuteRejectsIncompleteBilling(t *testing.T) {
	productID := uuid.New()
	entries := []cart.Entry{{ProductID: productID, Quantity: 1}}
	fixture := newCheckoutFixture(t, entries, map[uuid.UUID]catalog.ProductView{
		productID: {ID: productID, Name: "p", Price: decimal.NewFromInt(5)},
	})

	billing := validBilling()
	billing.StreetAddress = "  "
	_, err := fixture.svc.Execute(context.Background(), uuid.New(), Request{
		Billing:       billing,
		PaymentMethod: enums.PaymentMethodBank,
	})
	if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(fixture.toaster.severities) != 1 || fixture.toaster.severities[0] != enums.ToastSeverityError {
		t.Fatalf("expected error toast on invalid billing, got %+v", fixture.toaster.severities)
	}
}

func TestExecuteInvalidPaymentMethodProducesErrorToast(t *testing.T) {
	productID := uuid.New()
	entries := []cart.Entry{{ProductID: productID, Quantity: 1}}
	fixture := newCheckoutFixture(t, entries, map[uuid.UUID]catalog.ProductView{
		productID: {ID: productID, Name: "p", Price: decimal.NewFromInt(5)},
	})

	_, err := fixture.svc.Execute(context.Background(), uuid.New(), Request{
		Billing:       validBilling(),
		PaymentMethod: enums.PaymentMethod("crypto"),
	})
	if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(fixture.toaster.severities) != 1 || fixture.toaster.severities[0] != enums.ToastSeverityError {
		t.Fatalf("expected error toast on invalid payment method, got %+v", fixture.toaster.severities)
	}
}

func TestExecuteVanishedProductIsStateConflict(t *testing.T) {
	entries := []cart.Entry{{ProductID: uuid.New(), Quantity: 1}}
	fixture := newCheckoutFixture(t, entries, nil)

	_, err := fixture.svc.Execute(context.Background(), uuid.New(), Request{
		Billing:       validBilling(),
		PaymentMethod: enums.PaymentMethodBank,
	})
	if pkgerrors.As(err).Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
	if fixture.cart.cleared {
		t.Fatal("cart must stay untouched on failure")
	}
}

func TestExecuteOutboxFailureRollsBackOrder(t *testing.T) {
	productID := uuid.New()
	entries := []cart.Entry{{ProductID: productID, Quantity: 1}}
	fixture := newCheckoutFixture(t, entries, map[uuid.UUID]catalog.ProductView{
		productID: {ID: productID, Name: "p", Price: decimal.NewFromInt(5)},
	})
	fixture.outbox.err = errors.New("insert failed")

	_, err := fixture.svc.Execute(context.Background(), uuid.New(), Request{
		Billing:       validBilling(),
		PaymentMethod: enums.PaymentMethodBank,
	})
	if err == nil {
		t.Fatal("expected error")
	}

	var count int64
	if err := fixture.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback, found %d orders", count)
	}
	if fixture.cart.cleared {
		t.Fatal("cart must stay untouched on failure")
	}
	if len(fixture.toaster.severities) == 0 || fixture.toaster.severities[len(fixture.toaster.severities)-1] != enums.ToastSeverityError {
		t.Fatal("expected error toast on failure")
	}
}
