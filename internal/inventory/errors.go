package inventory

import (
	"errors"
	"log"

	"github.com/Sixta74/evalS4IL/internal/store"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every handler error as {"error": message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"error": fe.Message,
		})
	}

	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var pe *store.PersistenceError
	if errors.As(err, &pe) {
		log.Println("Persistence error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": pe.Error(),
		})
	}

	log.Println("Unexpected error:", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "unexpected server error",
	})
}

// notFound turns store.ErrNotFound into a 404 carrying msg and passes any
// other error through.
func notFound(err error, msg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, msg)
	}
	return err
}
