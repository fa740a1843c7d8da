package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Sixta74/evalS4IL/internal/database"
	"github.com/Sixta74/evalS4IL/internal/models"
	"github.com/Sixta74/evalS4IL/internal/store"
)

func newTestStore(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return store.New(db), db
}

type fixture struct {
	category *models.Category
	article  *models.Article
	command  *models.Command
}

func seed(t *testing.T, s *store.Store) fixture {
	t.Helper()
	ctx := context.Background()

	cat := &models.Category{Name: "Électronique", Description: "Articles tech"}
	require.NoError(t, s.Categories.Create(ctx, cat))

	a := &models.Article{
		Name:        "Smartphone",
		EAN13:       "1234567890123",
		Brand:       "Samsung",
		PictureURL:  "image.jpg",
		Price:       decimal.RequireFromString("999.99"),
		Description: "A phone",
		CategoryID:  &cat.ID,
	}
	require.NoError(t, s.Articles.Create(ctx, a))

	com := &models.Command{Date: day(2024, 3, 1), Comment: "restock"}
	require.NoError(t, s.Commands.Create(ctx, com))

	return fixture{category: cat, article: a, command: com}
}

func addStock(t *testing.T, s *store.Store, articleID, commandID uint, tt models.TransferType, qty int) *models.Stock {
	t.Helper()
	st := &models.Stock{
		Date:         day(2024, 3, 2),
		Quantity:     qty,
		TransferType: tt,
		Comment:      "movement",
		ArticleID:    articleID,
		CommandID:    commandID,
	}
	require.NoError(t, s.Stocks.Create(context.Background(), st))
	return st
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stockIDs(stocks []models.Stock) []uint {
	ids := make([]uint, 0, len(stocks))
	for _, s := range stocks {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestCreateAssignsIDsAndRoundTrips(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	f := seed(t, s)

	assert.NotZero(t, f.category.ID)
	assert.NotZero(t, f.article.ID)
	assert.NotZero(t, f.command.ID)

	got, err := s.Articles.GetByID(ctx, f.article.ID)
	require.NoError(t, err)
	assert.Equal(t, "Smartphone", got.Name)
	assert.Equal(t, "1234567890123", got.EAN13)
	assert.Equal(t, "Samsung", got.Brand)
	assert.Equal(t, "image.jpg", got.PictureURL)
	assert.True(t, decimal.RequireFromString("999.99").Equal(got.Price), "price %s", got.Price)
	require.NotNil(t, got.Category)
	assert.Equal(t, f.category.ID, got.Category.ID)
	assert.Empty(t, got.Stocks)

	com, err := s.Commands.GetByID(ctx, f.command.ID)
	require.NoError(t, err)
	assert.Equal(t, "restock", com.Comment)
	assert.True(t, day(2024, 3, 1).Equal(com.Date))
}

func TestGetByIDMissingReturnsErrNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Articles.GetByID(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Categories.GetByID(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Commands.GetByID(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Stocks.GetByID(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Articles.GetByStockID(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Commands.GetByStockID(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetAllOnEmptyStoreIsEmptyNotNil(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	articles, err := s.Articles.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, articles)
	assert.Empty(t, articles)

	categories, err := s.Categories.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, categories)

	commands, err := s.Commands.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, commands)

	stocks, err := s.Stocks.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, stocks)

	byType, err := s.Stocks.GetAllByTransferType(ctx, models.TransferIn)
	require.NoError(t, err)
	assert.NotNil(t, byType)
	assert.Empty(t, byType)
}

func TestGetAllReturnsEveryRecordInIDOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, s.Categories.Create(ctx, &models.Category{Name: name, Description: name}))
	}

	categories, err := s.Categories.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "a", categories[0].Name)
	assert.Equal(t, "c", categories[2].Name)
	assert.Less(t, categories[0].ID, categories[1].ID)
}

func TestUpdateOverwritesFields(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	f := seed(t, s)

	a, err := s.Articles.GetByID(ctx, f.article.ID)
	require.NoError(t, err)
	a.Price = decimal.RequireFromString("799.99")
	a.Brand = "Samsung Electronics"
	require.NoError(t, s.Articles.Update(ctx, a))

	got, err := s.Articles.GetByID(ctx, f.article.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("799.99").Equal(got.Price))
	assert.Equal(t, "Samsung Electronics", got.Brand)
	assert.Equal(t, f.category.ID, *got.CategoryID)

	cat, err := s.Categories.GetByID(ctx, f.category.ID)
	require.NoError(t, err)
	cat.Description = "Gadgets"
	require.NoError(t, s.Categories.Update(ctx, cat))

	cat, err = s.Categories.GetByID(ctx, f.category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gadgets", cat.Description)
}

func TestDeleteArticleCascadesToStocks(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	f := seed(t, s)

	in := addStock(t, s, f.article.ID, f.command.ID, models.TransferIn, 10)
	out := addStock(t, s, f.article.ID, f.command.ID, models.TransferOut, 3)

	a, err := s.Articles.GetByID(ctx, f.article.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{in.ID, out.ID}, stockIDs(a.Stocks))

	require.NoError(t, s.Articles.Delete(ctx, a))

	_, err = s.Articles.GetByID(ctx, f.article.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Stocks.GetByID(ctx, in.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Stocks.GetByID(ctx, out.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// the command survives, without stocks
	com, err := s.Commands.GetByID(ctx, f.command.ID)
	require.NoError(t, err)
	assert.Empty(t, com.Stocks)
}

func TestDeleteCommandCascadesToStocks(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	f := seed(t, s)

	st := addStock(t, s, f.article.ID, f.command.ID, models.TransferIn, 5)

	com, err := s.Commands.GetByID(ctx, f.command.ID)
	require.NoError(t, err)
	require.NoError(t, s.Commands.Delete(ctx, com))

	_, err = s.Stocks.GetByID(ctx, st.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	a, err := s.Articles.GetByID(ctx, f.article.ID)
	require.NoError(t, err)
	assert.Empty(t, a.Stocks)
}

func TestDeleteCategoryKeepsArticles(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	f := seed(t, s)

	require.NoError(t, s.Categories.Delete(ctx, f.category))

	_, err := s.Categories.GetByID(ctx, f.category.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	a, err := s.Articles.GetByID(ctx, f.article.ID)
	require.NoError(t, err)
	assert.Nil(t, a.CategoryID)
	assert.Nil(t, a.Category)
}

func TestUpdateArticleStocksRemovesOrphans(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	f := seed(t, s)

	keep := addStock(t, s, f.article.ID, f.command.ID, models.TransferIn, 10)
	drop := addStock(t, s, f.article.ID, f.command.ID, models.TransferOut, 2)

	a, err := s.Articles.GetByID(ctx, f.article.ID)
	require.NoError(t, err)
	a.Stocks = []models.Stock{*keep}
	require.NoError(t, s.Articles.Update(ctx, a))
	assert.Equal(t, []uint{keep.ID}, stockIDs(a.Stocks))

	_, err = s.Stocks.GetByID(ctx, drop.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Stocks.GetByID(ctx, keep.ID)
	assert.NoError(t, err)

	// an empty list clears the collection
	a.Stocks = []models.Stock{}
	require.NoError(t, s.Articles.Update(ctx, a))
	stocks, err := s.Stocks.GetAllByArticleID(ctx, f.article.ID)
	require.NoError(t, err)
	assert.Empty(t, stocks)
}

func TestUpdateWithoutStockListKeepsStocks(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	f := seed(t, s)

	st := addStock(t, s, f.article.ID, f.command.ID, models.TransferIn, 1)

	a, err := s.Articles.GetByID(ctx, f.article.ID)
	require.NoError(t, err)
	a.Stocks = nil
	a.Name = "Phone"
	require.NoError(t, s.Articles.Update(ctx, a))

	_, err = s.Stocks.GetByID(ctx, st.ID)
	assert.NoError(t, err)
}

func TestUpdateCommandStocksMovesThemBetweenCommands(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	f := seed(t, s)

	st := addStock(t, s, f.article.ID, f.command.ID, models.TransferIn, 4)

	other := &models.Command{Date: day(2024, 4, 1), Comment: "second"}
	require.NoError(t, s.Commands.Create(ctx, other))

	other.Stocks = []models.Stock{*st}
	require.NoError(t, s.Commands.Update(ctx, other))

	moved, err := s.Stocks.GetByID(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, moved.CommandID)

	first, err := s.Commands.GetByID(ctx, f.command.ID)
	require.NoError(t, err)
	assert.Empty(t, first.Stocks)

	owner, err := s.Commands.GetByStockID(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, owner.ID)
}

func TestRelatedLookups(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	f := seed(t, s)

	in := addStock(t, s, f.article.ID, f.command.ID, models.TransferIn, 10)
	out := addStock(t, s, f.article.ID, f.command.ID, models.TransferOut, 4)

	a, err := s.Articles.GetByStockID(ctx, out.ID)
	require.NoError(t, err)
	assert.Equal(t, f.article.ID, a.ID)
	assert.Len(t, a.Stocks, 2)

	com, err := s.Commands.GetByStockID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, f.command.ID, com.ID)

	byArticle, err := s.Stocks.GetAllByArticleID(ctx, f.article.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{in.ID, out.ID}, stockIDs(byArticle))

	byCommand, err := s.Stocks.GetAllByCommandID(ctx, f.command.ID)
	require.NoError(t, err)
	assert.Len(t, byCommand, 2)

	outs, err := s.Stocks.GetAllByTransferType(ctx, models.TransferOut)
	require.NoError(t, err)
	assert.Equal(t, []uint{out.ID}, stockIDs(outs))

	byCategory, err := s.Articles.GetAllByCategoryID(ctx, f.category.ID)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, f.article.ID, byCategory[0].ID)

	none, err := s.Stocks.GetAllByArticleID(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFailedCreateRollsBackAndWrapsCause(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	f := seed(t, s)

	var logsBefore int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&logsBefore).Error)

	// article 999 does not exist, the foreign key rejects the row
	err := s.Stocks.Create(ctx, &models.Stock{
		Date:         day(2024, 3, 2),
		Quantity:     1,
		TransferType: models.TransferIn,
		Comment:      "broken",
		ArticleID:    999,
		CommandID:    f.command.ID,
	})
	require.Error(t, err)

	var pe *store.PersistenceError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "could not create stock", pe.Op)
	assert.NotNil(t, errors.Unwrap(err))

	stocks, err := s.Stocks.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, stocks)

	var logsAfter int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&logsAfter).Error)
	assert.Equal(t, logsBefore, logsAfter)
}

func TestMutationsAreJournaled(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	cat := &models.Category{Name: "Tools", Description: "Hand tools"}
	require.NoError(t, s.Categories.Create(ctx, cat))
	cat.Name = "Power tools"
	require.NoError(t, s.Categories.Update(ctx, cat))
	require.NoError(t, s.Categories.Delete(ctx, cat))

	var logs []models.AuditLog
	require.NoError(t, db.Where("entity_type = ? AND entity_id = ?", "category", cat.ID).Order("id").Find(&logs).Error)
	require.Len(t, logs, 3)
	assert.Equal(t, models.AuditActionCreate, logs[0].Action)
	assert.Equal(t, "null", logs[0].BeforeData)
	assert.Equal(t, models.AuditActionUpdate, logs[1].Action)
	assert.Contains(t, logs[1].BeforeData, "Tools")
	assert.Contains(t, logs[1].AfterData, "Power tools")
	assert.Equal(t, models.AuditActionDelete, logs[2].Action)
	assert.Equal(t, "null", logs[2].AfterData)
}

func TestUpdateWithNilStocksKeepsStocksAddedAfterLoad(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	f := seed(t, s)

	a, err := s.Articles.GetByID(ctx, f.article.ID)
	require.NoError(t, err)
	st := addStock(t, s, f.article.ID, f.command.ID, models.TransferIn, 2)

	a.Stocks = nil
	a.Name = "Phone"
	require.NoError(t, s.Articles.Update(ctx, a))
	assert.Equal(t, []uint{st.ID}, stockIDs(a.Stocks))

	_, err = s.Stocks.GetByID(ctx, st.ID)
	assert.NoError(t, err)
}
