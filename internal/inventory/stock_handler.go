package inventory

import (
	"fmt"
	"time"

	"github.com/Sixta74/evalS4IL/internal/models"
	"github.com/Sixta74/evalS4IL/internal/store"

	"github.com/gofiber/fiber/v2"
)

var stockFields = []string{
	FieldStockDate,
	FieldArticleID,
	FieldStockQuantity,
	FieldStockTransferType,
	FieldStockComment,
	FieldCommandID,
}

// stockForm is the parsed body shared by create and update.
type stockForm struct {
	Date         time.Time
	ArticleID    uint
	CommandID    uint
	Quantity     int
	TransferType models.TransferType
	Comment      string
}

func parseStockForm(vals map[string]string) (stockForm, error) {
	var f stockForm
	var err error

	if f.Date, err = parseDate(FieldStockDate, vals[FieldStockDate]); err != nil {
		return f, err
	}
	if f.ArticleID, err = parseID(FieldArticleID, vals[FieldArticleID]); err != nil {
		return f, err
	}
	if f.Quantity, err = parseQuantity(FieldStockQuantity, vals[FieldStockQuantity]); err != nil {
		return f, err
	}
	if f.TransferType, err = models.ParseTransferType(vals[FieldStockTransferType]); err != nil {
		return f, badRequest("%s must be IN or OUT, got %q", FieldStockTransferType, vals[FieldStockTransferType])
	}
	if f.CommandID, err = parseID(FieldCommandID, vals[FieldCommandID]); err != nil {
		return f, err
	}
	f.Comment = vals[FieldStockComment]
	return f, nil
}

// GET /stock/all
func ListStocksHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stocks, err := s.Stocks.GetAll(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(toStockResponses(stocks))
	}
}

// GET /stock/:id
func GetStockHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		st, err := s.Stocks.GetByID(c.UserContext(), id)
		if err != nil {
			return notFound(err, fmt.Sprintf("no stock with id %d", id))
		}
		return c.JSON(toStockResponse(st))
	}
}

// GET /stock/article/:id
func ListStocksByArticleHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		stocks, err := s.Stocks.GetAllByArticleID(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(toStockResponses(stocks))
	}
}

// GET /stock/command/:id
func ListStocksByCommandHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		stocks, err := s.Stocks.GetAllByCommandID(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(toStockResponses(stocks))
	}
}

// GET /stock/transfer/:type
func ListStocksByTransferTypeHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := models.ParseTransferType(c.Params("type"))
		if err != nil {
			return badRequest("transfer type must be IN or OUT, got %q", c.Params("type"))
		}

		stocks, err := s.Stocks.GetAllByTransferType(c.UserContext(), t)
		if err != nil {
			return err
		}
		return c.JSON(toStockResponses(stocks))
	}
}

// POST /stock/add
func CreateStockHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vals, err := requireFields(c, stockFields...)
		if err != nil {
			return err
		}
		f, err := parseStockForm(vals)
		if err != nil {
			return err
		}

		ctx := c.UserContext()
		article, err := resolveArticle(ctx, s.Articles, f.ArticleID)
		if err != nil {
			return err
		}
		command, err := resolveCommand(ctx, s.Commands, f.CommandID)
		if err != nil {
			return err
		}

		st := models.Stock{
			Date:         f.Date,
			Quantity:     f.Quantity,
			TransferType: f.TransferType,
			Comment:      f.Comment,
			ArticleID:    article.ID,
			CommandID:    command.ID,
		}
		if err := s.Stocks.Create(ctx, &st); err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(toStockResponse(&st))
	}
}

// PUT /stock/update
func UpdateStockHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vals, err := requireFields(c, append([]string{FieldStockID}, stockFields...)...)
		if err != nil {
			return err
		}
		id, err := parseID(FieldStockID, vals[FieldStockID])
		if err != nil {
			return err
		}
		f, err := parseStockForm(vals)
		if err != nil {
			return err
		}

		ctx := c.UserContext()
		st, err := s.Stocks.GetByID(ctx, id)
		if err != nil {
			return notFound(err, fmt.Sprintf("no stock with id %d", id))
		}

		article, err := resolveArticle(ctx, s.Articles, f.ArticleID)
		if err != nil {
			return err
		}
		command, err := resolveCommand(ctx, s.Commands, f.CommandID)
		if err != nil {
			return err
		}

		st.Date = f.Date
		st.Quantity = f.Quantity
		st.TransferType = f.TransferType
		st.Comment = f.Comment
		st.ArticleID = article.ID
		st.CommandID = command.ID

		if err := s.Stocks.Update(ctx, st); err != nil {
			return err
		}

		return c.JSON(toStockResponse(st))
	}
}

// DELETE /stock/delete/:id
func DeleteStockHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		ctx := c.UserContext()
		st, err := s.Stocks.GetByID(ctx, id)
		if err != nil {
			return notFound(err, fmt.Sprintf("no stock with id %d", id))
		}

		if err := s.Stocks.Delete(ctx, st); err != nil {
			return err
		}

		return c.JSON(MessageResponse{Message: "stock deleted"})
	}
}
