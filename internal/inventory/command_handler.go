package inventory

import (
	"fmt"

	"github.com/Sixta74/evalS4IL/internal/models"
	"github.com/Sixta74/evalS4IL/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /command/all
func ListCommandsHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		commands, err := s.Commands.GetAll(c.UserContext())
		if err != nil {
			return err
		}

		res := make([]CommandResponse, 0, len(commands))
		for i := range commands {
			res = append(res, toCommandResponse(&commands[i]))
		}
		return c.JSON(res)
	}
}

// GET /command/:id
func GetCommandHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		com, err := s.Commands.GetByID(c.UserContext(), id)
		if err != nil {
			return notFound(err, fmt.Sprintf("no command with id %d", id))
		}
		return c.JSON(toCommandResponse(com))
	}
}

// GET /command/stock/:id
func GetCommandByStockHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		com, err := s.Commands.GetByStockID(c.UserContext(), id)
		if err != nil {
			return notFound(err, fmt.Sprintf("no command holds stock %d", id))
		}
		return c.JSON(toCommandResponse(com))
	}
}

// POST /command/add
func CreateCommandHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vals, err := requireFields(c, FieldCommandDate, FieldCommandComment)
		if err != nil {
			return err
		}

		date, err := parseDate(FieldCommandDate, vals[FieldCommandDate])
		if err != nil {
			return err
		}
		stockIDs, withStocks, err := formIDList(c, FieldStockIDs)
		if err != nil {
			return err
		}

		com := models.Command{
			Date:    date,
			Comment: vals[FieldCommandComment],
		}

		ctx := c.UserContext()
		if withStocks {
			if com.Stocks, err = resolveStocks(ctx, s.Stocks, stockIDs); err != nil {
				return err
			}
		}

		if err := s.Commands.Create(ctx, &com); err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(toCommandResponse(&com))
	}
}

// PUT /command/update
func UpdateCommandHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vals, err := requireFields(c, FieldCommandID, FieldCommandDate, FieldCommandComment)
		if err != nil {
			return err
		}

		id, err := parseID(FieldCommandID, vals[FieldCommandID])
		if err != nil {
			return err
		}
		date, err := parseDate(FieldCommandDate, vals[FieldCommandDate])
		if err != nil {
			return err
		}
		stockIDs, withStocks, err := formIDList(c, FieldStockIDs)
		if err != nil {
			return err
		}

		ctx := c.UserContext()
		com, err := s.Commands.GetByID(ctx, id)
		if err != nil {
			return notFound(err, fmt.Sprintf("no command with id %d", id))
		}

		com.Date = date
		com.Comment = vals[FieldCommandComment]

		// the preloaded list is a snapshot, only StockIds replaces it
		com.Stocks = nil
		if withStocks {
			if com.Stocks, err = resolveStocks(ctx, s.Stocks, stockIDs); err != nil {
				return err
			}
		}

		if err := s.Commands.Update(ctx, com); err != nil {
			return err
		}

		return c.JSON(toCommandResponse(com))
	}
}

// DELETE /command/delete/:id
func DeleteCommandHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		ctx := c.UserContext()
		com, err := s.Commands.GetByID(ctx, id)
		if err != nil {
			return notFound(err, fmt.Sprintf("no command with id %d", id))
		}

		if err := s.Commands.Delete(ctx, com); err != nil {
			return err
		}

		return c.JSON(MessageResponse{Message: "command deleted"})
	}
}
