package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Article: a catalogued item. Owns its stock movements.
type Article struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:100;not null"`
	EAN13       string          `gorm:"column:ean13;size:30;not null;index"`
	Brand       string          `gorm:"size:100;not null"`
	PictureURL  string          `gorm:"size:255;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Description string          `gorm:"size:255;not null"`
	CategoryID  *uint           `gorm:"index"`
	Category    *Category
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Stocks []Stock `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
}
