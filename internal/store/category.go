package store

import (
	"context"
	"fmt"

	"github.com/Sixta74/evalS4IL/internal/audit"
	"github.com/Sixta74/evalS4IL/internal/models"

	"gorm.io/gorm"
)

type CategoryGateway interface {
	Create(ctx context.Context, cat *models.Category) error
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	Update(ctx context.Context, cat *models.Category) error
	// Delete removes cat. Articles referencing it are kept, without category.
	Delete(ctx context.Context, cat *models.Category) error
}

type categoryGateway struct {
	db *gorm.DB
}

func NewCategoryGateway(db *gorm.DB) CategoryGateway {
	return &categoryGateway{db: db}
}

func (g *categoryGateway) Create(ctx context.Context, cat *models.Category) error {
	return withTx(ctx, g.db, "could not create category", func(tx *gorm.DB) error {
		if err := tx.Create(cat).Error; err != nil {
			return err
		}
		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "category",
			EntityID:    cat.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("category created: %s", cat.Name),
			After:       cat,
		})
	})
}

func (g *categoryGateway) GetAll(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := g.db.WithContext(ctx).Order("id asc").Find(&categories).Error; err != nil {
		return nil, &PersistenceError{Op: "could not list categories", Err: err}
	}
	return categories, nil
}

func (g *categoryGateway) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var cat models.Category
	if err := g.db.WithContext(ctx).First(&cat, "id = ?", id).Error; err != nil {
		return nil, readErr("could not load category", err)
	}
	return &cat, nil
}

func (g *categoryGateway) Update(ctx context.Context, cat *models.Category) error {
	return withTx(ctx, g.db, "could not update category", func(tx *gorm.DB) error {
		var before models.Category
		if err := tx.First(&before, cat.ID).Error; err != nil {
			return err
		}
		if err := tx.Save(cat).Error; err != nil {
			return err
		}
		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "category",
			EntityID:    cat.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("category updated: %s", cat.Name),
			Before:      before,
			After:       cat,
		})
	})
}

func (g *categoryGateway) Delete(ctx context.Context, cat *models.Category) error {
	return withTx(ctx, g.db, "could not delete category", func(tx *gorm.DB) error {
		if err := tx.Model(&models.Article{}).
			Where("category_id = ?", cat.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Category{}, cat.ID).Error; err != nil {
			return err
		}
		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "category",
			EntityID:    cat.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("category deleted: %s", cat.Name),
			Before:      cat,
		})
	})
}
