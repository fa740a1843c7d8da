package inventory

import (
	"context"
	"errors"

	"github.com/Sixta74/evalS4IL/internal/models"
	"github.com/Sixta74/evalS4IL/internal/store"
)

// Lookups used while assembling a record. An id that does not resolve is
// the client's mistake, so it comes back as a 400.

func resolveCategory(ctx context.Context, gw store.CategoryGateway, id uint) (*models.Category, error) {
	cat, err := gw.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, badRequest("no category with id %d", id)
	}
	return cat, err
}

func resolveArticle(ctx context.Context, gw store.ArticleGateway, id uint) (*models.Article, error) {
	a, err := gw.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, badRequest("no article with id %d", id)
	}
	return a, err
}

func resolveCommand(ctx context.Context, gw store.CommandGateway, id uint) (*models.Command, error) {
	com, err := gw.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, badRequest("no command with id %d", id)
	}
	return com, err
}

func resolveStocks(ctx context.Context, gw store.StockGateway, ids []uint) ([]models.Stock, error) {
	stocks := make([]models.Stock, 0, len(ids))
	for _, id := range ids {
		s, err := gw.GetByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return nil, badRequest("no stock with id %d", id)
		}
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, *s)
	}
	return stocks, nil
}
