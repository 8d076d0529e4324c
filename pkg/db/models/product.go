package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/lucashenriquez/exclusive-backend/pkg/enums"
)

// Product represents the canonical catalog listing.
type Product struct {
	ID            uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string                `gorm:"column:name;not null"`
	Description   *string               `gorm:"column:description"`
	ImageURL      string                `gorm:"column:image_url;not null"`
	Category      enums.ProductCategory `gorm:"column:category;type:product_category;not null"`
	Price         decimal.Decimal       `gorm:"column:price;type:numeric(12,2);not null"`
	OriginalPrice *decimal.Decimal      `gorm:"column:original_price;type:numeric(12,2)"`
	Rating        decimal.Decimal       `gorm:"column:rating;type:numeric(3,2);not null;default:0"`
	ReviewCount   int                   `gorm:"column:review_count;not null;default:0"`
	Colors        pq.StringArray        `gorm:"column:colors;type:text[];not null;default:ARRAY[]::text[]"`
	Sizes         pq.StringArray        `gorm:"column:sizes;type:text[];not null;default:ARRAY[]::text[]"`
	InStock       bool                  `gorm:"column:in_stock;not null;default:true"`
	CreatedAt     time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
