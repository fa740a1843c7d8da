package models

import (
	"fmt"
	"time"
)

type TransferType string

const (
	TransferIn  TransferType = "IN"
	TransferOut TransferType = "OUT"
)

// ParseTransferType accepts exactly "IN" or "OUT".
func ParseTransferType(s string) (TransferType, error) {
	switch TransferType(s) {
	case TransferIn, TransferOut:
		return TransferType(s), nil
	}
	return "", fmt.Errorf("unknown transfer type %q", s)
}

// Stock: one inventory movement of an article, recorded under a command.
type Stock struct {
	ID           uint         `gorm:"primaryKey"`
	Date         time.Time    `gorm:"index;not null"`
	Quantity     int          `gorm:"not null"`
	TransferType TransferType `gorm:"size:3;not null;index"`
	Comment      string       `gorm:"size:255;not null"`
	ArticleID    uint         `gorm:"index;not null"`
	Article      *Article
	CommandID    uint `gorm:"index;not null"`
	Command      *Command
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
