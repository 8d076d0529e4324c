package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucashenriquez/exclusive-backend/pkg/db/models"
	"github.com/lucashenriquez/exclusive-backend/pkg/enums"
)

// OrderItemDTO is one priced line of a placed order.
type OrderItemDTO struct {
	ProductID     uuid.UUID       `json:"product_id"`
	ProductName   string          `json:"product_name"`
	ImageURL      string          `json:"image_url"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int             `json:"quantity"`
	SelectedColor *string         `json:"selected_color,omitempty"`
	SelectedSize  *string         `json:"selected_size,omitempty"`
	LineTotal     decimal.Decimal `json:"line_total"`
}

// OrderSummaryDTO is the listing shape of an order.
type OrderSummaryDTO struct {
	ID            uuid.UUID           `json:"id"`
	Status        enums.OrderStatus   `json:"status"`
	Total         decimal.Decimal     `json:"total"`
	PaymentMethod enums.PaymentMethod `json:"payment_method"`
	ItemCount     int                 `json:"item_count"`
	CreatedAt     time.Time           `json:"created_at"`
}

// OrderDetailDTO is the full shape of an order including its billing snapshot.
type OrderDetailDTO struct {
	ID            uuid.UUID           `json:"id"`
	Status        enums.OrderStatus   `json:"status"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	ShippingFee   decimal.Decimal     `json:"shipping_fee"`
	Total         decimal.Decimal     `json:"total"`
	PaymentMethod enums.PaymentMethod `json:"payment_method"`

	BillingName   string  `json:"billing_name"`
	BillingEmail  string  `json:"billing_email"`
	BillingPhone  string  `json:"billing_phone"`
	StreetAddress string  `json:"street_address"`
	Apartment     *string `json:"apartment,omitempty"`
	TownCity      string  `json:"town_city"`
	CompanyName   *string `json:"company_name,omitempty"`

	Items     []OrderItemDTO `json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// OrderListDTO is a cursor-paginated page of order summaries.
type OrderListDTO struct {
	Orders     []OrderSummaryDTO `json:"orders"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

// SummaryFromModel converts the persisted order into its listing shape.
func SummaryFromModel(order models.Order) OrderSummaryDTO {
	itemCount := 0
	for _, item := range order.Items {
		itemCount += item.Quantity
	}
	return OrderSummaryDTO{
		ID:            order.ID,
		Status:        order.Status,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		ItemCount:     itemCount,
		CreatedAt:     order.CreatedAt,
	}
}

// DetailFromModel converts the persisted order into its detail shape.
func DetailFromModel(order models.Order) *OrderDetailDTO {
	items := make([]OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemDTO{
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			ImageURL:      item.ImageURL,
			UnitPrice:     item.UnitPrice,
			Quantity:      item.Quantity,
			SelectedColor: item.SelectedColor,
			SelectedSize:  item.SelectedSize,
			LineTotal:     item.LineTotal,
		})
	}
	return &OrderDetailDTO{
		ID:            order.ID,
		Status:        order.Status,
		Subtotal:      order.Subtotal,
		ShippingFee:   order.ShippingFee,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		BillingName:   order.BillingName,
		BillingEmail:  order.BillingEmail,
		BillingPhone:  order.BillingPhone,
		StreetAddress: order.StreetAddress,
		Apartment:     order.Apartment,
		TownCity:      order.TownCity,
		CompanyName:   order.CompanyName,
		Items:         items,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}
