package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sixta74/evalS4IL/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// withTx runs fn inside a single transaction. Any error rolls the
// transaction back and comes out as a *PersistenceError.
func withTx(ctx context.Context, db *gorm.DB, op string, fn func(tx *gorm.DB) error) (err error) {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return &PersistenceError{Op: op, Err: tx.Error}
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return &PersistenceError{Op: op, Err: err}
	}
	if err := tx.Commit().Error; err != nil {
		return &PersistenceError{Op: op, Err: err}
	}
	return nil
}

// readErr turns a read failure into ErrNotFound or a *PersistenceError.
func readErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return &PersistenceError{Op: op, Err: err}
}

func stocksByID(db *gorm.DB) *gorm.DB {
	return db.Order("stocks.id asc")
}

// syncStocks makes stocks the complete owned collection of a parent. column
// is the parent's foreign key on the stocks table. Listed stocks are created
// or re-pointed to the parent; stocks of the parent that are not listed any
// more are deleted.
func syncStocks(tx *gorm.DB, column string, ownerID uint, stocks []models.Stock) error {
	keep := make([]uint, 0, len(stocks))
	for i := range stocks {
		s := &stocks[i]
		switch column {
		case "article_id":
			s.ArticleID = ownerID
		case "command_id":
			s.CommandID = ownerID
		default:
			return fmt.Errorf("unknown stock owner column %q", column)
		}

		if s.ID == 0 {
			if err := tx.Omit(clause.Associations).Create(s).Error; err != nil {
				return err
			}
		} else if err := tx.Model(&models.Stock{}).Where("id = ?", s.ID).Update(column, ownerID).Error; err != nil {
			return err
		}
		keep = append(keep, s.ID)
	}

	orphans := tx.Where(column+" = ?", ownerID)
	if len(keep) > 0 {
		orphans = orphans.Where("id NOT IN ?", keep)
	}
	return orphans.Delete(&models.Stock{}).Error
}

// loadStocks refreshes an owner's collection after it was written.
func loadStocks(tx *gorm.DB, column string, ownerID uint) ([]models.Stock, error) {
	stocks := make([]models.Stock, 0)
	err := tx.Where(column+" = ?", ownerID).Order("id asc").Find(&stocks).Error
	return stocks, err
}
