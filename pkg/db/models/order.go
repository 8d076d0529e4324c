package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucashenriquez/exclusive-backend/pkg/enums"
)

// Order captures a placed checkout with its billing snapshot.
type Order struct {
	ID            uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID        uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index:orders_user_id_idx"`
	Status        enums.OrderStatus   `gorm:"column:status;type:order_status;not null;default:pending"`
	Subtotal      decimal.Decimal     `gorm:"column:subtotal;type:numeric(12,2);not null"`
	ShippingFee   decimal.Decimal     `gorm:"column:shipping_fee;type:numeric(12,2);not null;default:0"`
	Total         decimal.Decimal     `gorm:"column:total;type:numeric(12,2);not null"`
	PaymentMethod enums.PaymentMethod `gorm:"column:payment_method;type:payment_method;not null"`

	BillingName    string  `gorm:"column:billing_name;not null"`
	BillingEmail   string  `gorm:"column:billing_email;not null"`
	BillingPhone   string  `gorm:"column:billing_phone;not null"`
	StreetAddress  string  `gorm:"column:street_address;not null"`
	Apartment      *string `gorm:"column:apartment"`
	TownCity       string  `gorm:"column:town_city;not null"`
	CompanyName    *string `gorm:"column:company_name"`
	SaveBillingFor bool    `gorm:"column:save_billing_for;not null;default:false"`

	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

// OrderItem is a priced line frozen at checkout time.
type OrderItem struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID       uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index:order_items_order_id_idx"`
	ProductID     uuid.UUID       `gorm:"column:product_id;type:uuid;not null"`
	ProductName   string          `gorm:"column:product_name;not null"`
	ImageURL      string          `gorm:"column:image_url;not null"`
	UnitPrice     decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
	Quantity      int             `gorm:"column:quantity;not null"`
	SelectedColor *string         `gorm:"column:selected_color"`
	SelectedSize  *string         `gorm:"column:selected_size"`
	LineTotal     decimal.Decimal `gorm:"column:line_total;type:numeric(12,2);not null"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
}
