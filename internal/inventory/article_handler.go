package inventory

import (
	"fmt"

	"github.com/Sixta74/evalS4IL/internal/models"
	"github.com/Sixta74/evalS4IL/internal/store"

	"github.com/gofiber/fiber/v2"
)

var articleFields = []string{
	FieldArticleName,
	FieldArticleEAN13,
	FieldArticleBrand,
	FieldArticlePicture,
	FieldArticlePrice,
	FieldArticleDescription,
}

// GET /article/all
func ListArticlesHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		articles, err := s.Articles.GetAll(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(toArticleResponses(articles))
	}
}

// GET /article/:id
func GetArticleHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		a, err := s.Articles.GetByID(c.UserContext(), id)
		if err != nil {
			return notFound(err, fmt.Sprintf("no article with id %d", id))
		}
		return c.JSON(toArticleResponse(a))
	}
}

// GET /article/stock/:id
func GetArticleByStockHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		a, err := s.Articles.GetByStockID(c.UserContext(), id)
		if err != nil {
			return notFound(err, fmt.Sprintf("no article owns stock %d", id))
		}
		return c.JSON(toArticleResponse(a))
	}
}

// GET /article/category/:id
func ListArticlesByCategoryHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		articles, err := s.Articles.GetAllByCategoryID(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(toArticleResponses(articles))
	}
}

// POST /article/add
func CreateArticleHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vals, err := requireFields(c, articleFields...)
		if err != nil {
			return err
		}

		price, err := parsePrice(FieldArticlePrice, vals[FieldArticlePrice])
		if err != nil {
			return err
		}
		categoryID, err := parseOptionalID(FieldCategoryID, c.FormValue(FieldCategoryID))
		if err != nil {
			return err
		}
		stockIDs, withStocks, err := formIDList(c, FieldStockIDs)
		if err != nil {
			return err
		}

		a := models.Article{
			Name:        vals[FieldArticleName],
			EAN13:       vals[FieldArticleEAN13],
			Brand:       vals[FieldArticleBrand],
			PictureURL:  vals[FieldArticlePicture],
			Price:       price,
			Description: vals[FieldArticleDescription],
		}

		ctx := c.UserContext()
		if categoryID != nil {
			cat, err := resolveCategory(ctx, s.Categories, *categoryID)
			if err != nil {
				return err
			}
			a.CategoryID = &cat.ID
			a.Category = cat
		}
		if withStocks {
			if a.Stocks, err = resolveStocks(ctx, s.Stocks, stockIDs); err != nil {
				return err
			}
		}

		if err := s.Articles.Create(ctx, &a); err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(toArticleResponse(&a))
	}
}

// PUT /article/update
func UpdateArticleHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vals, err := requireFields(c, append([]string{FieldArticleID}, articleFields...)...)
		if err != nil {
			return err
		}

		id, err := parseID(FieldArticleID, vals[FieldArticleID])
		if err != nil {
			return err
		}
		price, err := parsePrice(FieldArticlePrice, vals[FieldArticlePrice])
		if err != nil {
			return err
		}
		categoryID, err := parseOptionalID(FieldCategoryID, c.FormValue(FieldCategoryID))
		if err != nil {
			return err
		}
		stockIDs, withStocks, err := formIDList(c, FieldStockIDs)
		if err != nil {
			return err
		}

		ctx := c.UserContext()
		a, err := s.Articles.GetByID(ctx, id)
		if err != nil {
			return notFound(err, fmt.Sprintf("no article with id %d", id))
		}

		a.Name = vals[FieldArticleName]
		a.EAN13 = vals[FieldArticleEAN13]
		a.Brand = vals[FieldArticleBrand]
		a.PictureURL = vals[FieldArticlePicture]
		a.Price = price
		a.Description = vals[FieldArticleDescription]

		if categoryID != nil {
			cat, err := resolveCategory(ctx, s.Categories, *categoryID)
			if err != nil {
				return err
			}
			a.CategoryID = &cat.ID
			a.Category = cat
		}

		// the preloaded list is a snapshot, only StockIds replaces it
		a.Stocks = nil
		if withStocks {
			if a.Stocks, err = resolveStocks(ctx, s.Stocks, stockIDs); err != nil {
				return err
			}
		}

		if err := s.Articles.Update(ctx, a); err != nil {
			return err
		}

		return c.JSON(toArticleResponse(a))
	}
}

// DELETE /article/delete/:id
func DeleteArticleHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		ctx := c.UserContext()
		a, err := s.Articles.GetByID(ctx, id)
		if err != nil {
			return notFound(err, fmt.Sprintf("no article with id %d", id))
		}

		if err := s.Articles.Delete(ctx, a); err != nil {
			return err
		}

		return c.JSON(MessageResponse{Message: "article deleted"})
	}
}

func toArticleResponses(articles []models.Article) []ArticleResponse {
	res := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		res = append(res, toArticleResponse(&articles[i]))
	}
	return res
}
