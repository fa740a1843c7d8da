package store

import (
	"context"
	"fmt"

	"github.com/Sixta74/evalS4IL/internal/audit"
	"github.com/Sixta74/evalS4IL/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommandGateway interface {
	Create(ctx context.Context, com *models.Command) error
	GetAll(ctx context.Context) ([]models.Command, error)
	GetByID(ctx context.Context, id uint) (*models.Command, error)
	// GetByStockID returns the command the given stock was recorded under.
	GetByStockID(ctx context.Context, stockID uint) (*models.Command, error)
	// Update writes the full state of com. A non-nil com.Stocks replaces the
	// command's stock list; stocks left out are deleted.
	Update(ctx context.Context, com *models.Command) error
	// Delete removes com together with its stocks.
	Delete(ctx context.Context, com *models.Command) error
}

type commandGateway struct {
	db *gorm.DB
}

func NewCommandGateway(db *gorm.DB) CommandGateway {
	return &commandGateway{db: db}
}

func (g *commandGateway) query(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).Preload("Stocks", stocksByID)
}

func (g *commandGateway) Create(ctx context.Context, com *models.Command) error {
	return withTx(ctx, g.db, "could not create command", func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(com).Error; err != nil {
			return err
		}
		if err := g.writeStocks(tx, com); err != nil {
			return err
		}
		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "command",
			EntityID:    com.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("command created for %s", com.Date.Format("2006-01-02")),
			After:       com,
		})
	})
}

func (g *commandGateway) GetAll(ctx context.Context) ([]models.Command, error) {
	commands := make([]models.Command, 0)
	if err := g.query(ctx).Order("commands.id asc").Find(&commands).Error; err != nil {
		return nil, &PersistenceError{Op: "could not list commands", Err: err}
	}
	return commands, nil
}

func (g *commandGateway) GetByID(ctx context.Context, id uint) (*models.Command, error) {
	var com models.Command
	if err := g.query(ctx).First(&com, "commands.id = ?", id).Error; err != nil {
		return nil, readErr("could not load command", err)
	}
	return &com, nil
}

func (g *commandGateway) GetByStockID(ctx context.Context, stockID uint) (*models.Command, error) {
	var com models.Command
	err := g.query(ctx).
		Joins("JOIN stocks ON stocks.command_id = commands.id").
		Where("stocks.id = ?", stockID).
		First(&com).Error
	if err != nil {
		return nil, readErr("could not load command by stock", err)
	}
	return &com, nil
}

func (g *commandGateway) Update(ctx context.Context, com *models.Command) error {
	return withTx(ctx, g.db, "could not update command", func(tx *gorm.DB) error {
		var before models.Command
		if err := tx.Preload("Stocks", stocksByID).First(&before, com.ID).Error; err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Save(com).Error; err != nil {
			return err
		}
		if err := g.writeStocks(tx, com); err != nil {
			return err
		}

		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "command",
			EntityID:    com.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("command updated: %d stocks", len(com.Stocks)),
			Before:      before,
			After:       com,
		})
	})
}

func (g *commandGateway) Delete(ctx context.Context, com *models.Command) error {
	return withTx(ctx, g.db, "could not delete command", func(tx *gorm.DB) error {
		if err := tx.Where("command_id = ?", com.ID).Delete(&models.Stock{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Command{}, com.ID).Error; err != nil {
			return err
		}
		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "command",
			EntityID:    com.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("command deleted (%d stocks)", len(com.Stocks)),
			Before:      com,
		})
	})
}

func (g *commandGateway) writeStocks(tx *gorm.DB, com *models.Command) error {
	if com.Stocks != nil {
		if err := syncStocks(tx, "command_id", com.ID, com.Stocks); err != nil {
			return err
		}
	}
	stocks, err := loadStocks(tx, "command_id", com.ID)
	if err != nil {
		return err
	}
	com.Stocks = stocks
	return nil
}
