package store

import (
	"context"
	"fmt"

	"github.com/Sixta74/evalS4IL/internal/audit"
	"github.com/Sixta74/evalS4IL/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockGateway interface {
	Create(ctx context.Context, s *models.Stock) error
	GetAll(ctx context.Context) ([]models.Stock, error)
	GetByID(ctx context.Context, id uint) (*models.Stock, error)
	GetAllByArticleID(ctx context.Context, articleID uint) ([]models.Stock, error)
	GetAllByCommandID(ctx context.Context, commandID uint) ([]models.Stock, error)
	GetAllByTransferType(ctx context.Context, t models.TransferType) ([]models.Stock, error)
	Update(ctx context.Context, s *models.Stock) error
	Delete(ctx context.Context, s *models.Stock) error
}

type stockGateway struct {
	db *gorm.DB
}

func NewStockGateway(db *gorm.DB) StockGateway {
	return &stockGateway{db: db}
}

func (g *stockGateway) Create(ctx context.Context, s *models.Stock) error {
	return withTx(ctx, g.db, "could not create stock", func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(s).Error; err != nil {
			return err
		}
		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "stock",
			EntityID:    s.ID,
			Action:      models.AuditActionCreate,
			Description: describeStock(s),
			After:       s,
		})
	})
}

func (g *stockGateway) GetAll(ctx context.Context) ([]models.Stock, error) {
	return g.list(ctx, "could not list stocks", nil)
}

func (g *stockGateway) GetByID(ctx context.Context, id uint) (*models.Stock, error) {
	var s models.Stock
	if err := g.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, readErr("could not load stock", err)
	}
	return &s, nil
}

func (g *stockGateway) GetAllByArticleID(ctx context.Context, articleID uint) ([]models.Stock, error) {
	return g.list(ctx, "could not list stocks by article", func(db *gorm.DB) *gorm.DB {
		return db.Where("article_id = ?", articleID)
	})
}

func (g *stockGateway) GetAllByCommandID(ctx context.Context, commandID uint) ([]models.Stock, error) {
	return g.list(ctx, "could not list stocks by command", func(db *gorm.DB) *gorm.DB {
		return db.Where("command_id = ?", commandID)
	})
}

func (g *stockGateway) GetAllByTransferType(ctx context.Context, t models.TransferType) ([]models.Stock, error) {
	return g.list(ctx, "could not list stocks by transfer type", func(db *gorm.DB) *gorm.DB {
		return db.Where("transfer_type = ?", t)
	})
}

func (g *stockGateway) Update(ctx context.Context, s *models.Stock) error {
	return withTx(ctx, g.db, "could not update stock", func(tx *gorm.DB) error {
		var before models.Stock
		if err := tx.First(&before, s.ID).Error; err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(s).Error; err != nil {
			return err
		}
		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "stock",
			EntityID:    s.ID,
			Action:      models.AuditActionUpdate,
			Description: describeStock(s),
			Before:      before,
			After:       s,
		})
	})
}

func (g *stockGateway) Delete(ctx context.Context, s *models.Stock) error {
	return withTx(ctx, g.db, "could not delete stock", func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Stock{}, s.ID).Error; err != nil {
			return err
		}
		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "stock",
			EntityID:    s.ID,
			Action:      models.AuditActionDelete,
			Description: describeStock(s),
			Before:      s,
		})
	})
}

func (g *stockGateway) list(ctx context.Context, op string, scope func(*gorm.DB) *gorm.DB) ([]models.Stock, error) {
	dbq := g.db.WithContext(ctx).Model(&models.Stock{})
	if scope != nil {
		dbq = dbq.Scopes(scope)
	}

	stocks := make([]models.Stock, 0)
	if err := dbq.Order("id asc").Find(&stocks).Error; err != nil {
		return nil, &PersistenceError{Op: op, Err: err}
	}
	return stocks, nil
}

func describeStock(s *models.Stock) string {
	return fmt.Sprintf("stock %s %d of article %d, command %d", s.TransferType, s.Quantity, s.ArticleID, s.CommandID)
}
