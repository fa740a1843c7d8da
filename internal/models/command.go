package models

import "time"

// Command: an order grouping several stock movements.
type Command struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"index;not null"`
	Comment   string    `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Stocks []Stock `gorm:"foreignKey:CommandID;constraint:OnDelete:CASCADE"`
}
