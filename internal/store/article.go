package store

import (
	"context"
	"fmt"

	"github.com/Sixta74/evalS4IL/internal/audit"
	"github.com/Sixta74/evalS4IL/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleGateway interface {
	// Create stores a and fills its ID. Stocks listed on a are attached to it.
	Create(ctx context.Context, a *models.Article) error
	GetAll(ctx context.Context) ([]models.Article, error)
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	// GetByStockID returns the article owning the given stock.
	GetByStockID(ctx context.Context, stockID uint) (*models.Article, error)
	GetAllByCategoryID(ctx context.Context, categoryID uint) ([]models.Article, error)
	// Update writes the full state of a. When a.Stocks is non-nil it becomes
	// the complete stock list of the article; stocks left out are deleted.
	Update(ctx context.Context, a *models.Article) error
	// Delete removes a together with its stocks.
	Delete(ctx context.Context, a *models.Article) error
}

type articleGateway struct {
	db *gorm.DB
}

func NewArticleGateway(db *gorm.DB) ArticleGateway {
	return &articleGateway{db: db}
}

func (g *articleGateway) query(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).Preload("Category").Preload("Stocks", stocksByID)
}

func (g *articleGateway) Create(ctx context.Context, a *models.Article) error {
	return withTx(ctx, g.db, "could not create article", func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(a).Error; err != nil {
			return err
		}
		if err := g.writeStocks(tx, a); err != nil {
			return err
		}
		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "article",
			EntityID:    a.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("article created: %s", a.Name),
			After:       a,
		})
	})
}

func (g *articleGateway) GetAll(ctx context.Context) ([]models.Article, error) {
	articles := make([]models.Article, 0)
	if err := g.query(ctx).Order("articles.id asc").Find(&articles).Error; err != nil {
		return nil, &PersistenceError{Op: "could not list articles", Err: err}
	}
	return articles, nil
}

func (g *articleGateway) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var a models.Article
	if err := g.query(ctx).First(&a, "articles.id = ?", id).Error; err != nil {
		return nil, readErr("could not load article", err)
	}
	return &a, nil
}

func (g *articleGateway) GetByStockID(ctx context.Context, stockID uint) (*models.Article, error) {
	var a models.Article
	err := g.query(ctx).
		Joins("JOIN stocks ON stocks.article_id = articles.id").
		Where("stocks.id = ?", stockID).
		First(&a).Error
	if err != nil {
		return nil, readErr("could not load article by stock", err)
	}
	return &a, nil
}

func (g *articleGateway) GetAllByCategoryID(ctx context.Context, categoryID uint) ([]models.Article, error) {
	articles := make([]models.Article, 0)
	err := g.query(ctx).
		Where("articles.category_id = ?", categoryID).
		Order("articles.id asc").
		Find(&articles).Error
	if err != nil {
		return nil, &PersistenceError{Op: "could not list articles by category", Err: err}
	}
	return articles, nil
}

func (g *articleGateway) Update(ctx context.Context, a *models.Article) error {
	return withTx(ctx, g.db, "could not update article", func(tx *gorm.DB) error {
		var before models.Article
		if err := tx.Preload("Stocks", stocksByID).First(&before, a.ID).Error; err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Save(a).Error; err != nil {
			return err
		}
		if err := g.writeStocks(tx, a); err != nil {
			return err
		}

		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "article",
			EntityID:    a.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("article updated: %s", a.Name),
			Before:      before,
			After:       a,
		})
	})
}

func (g *articleGateway) Delete(ctx context.Context, a *models.Article) error {
	return withTx(ctx, g.db, "could not delete article", func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", a.ID).Delete(&models.Stock{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Article{}, a.ID).Error; err != nil {
			return err
		}
		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "article",
			EntityID:    a.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("article deleted: %s (%d stocks)", a.Name, len(a.Stocks)),
			Before:      a,
		})
	})
}

// writeStocks applies a.Stocks when the caller set it and reloads the list.
func (g *articleGateway) writeStocks(tx *gorm.DB, a *models.Article) error {
	if a.Stocks != nil {
		if err := syncStocks(tx, "article_id", a.ID, a.Stocks); err != nil {
			return err
		}
	}
	stocks, err := loadStocks(tx, "article_id", a.ID)
	if err != nil {
		return err
	}
	a.Stocks = stocks
	return nil
}
