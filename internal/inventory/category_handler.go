package inventory

import (
	"fmt"

	"github.com/Sixta74/evalS4IL/internal/models"
	"github.com/Sixta74/evalS4IL/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /category/all
func ListCategoriesHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := s.Categories.GetAll(c.UserContext())
		if err != nil {
			return err
		}

		res := make([]CategoryResponse, 0, len(categories))
		for i := range categories {
			res = append(res, toCategoryResponse(&categories[i]))
		}
		return c.JSON(res)
	}
}

// GET /category/:id
func GetCategoryHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		cat, err := s.Categories.GetByID(c.UserContext(), id)
		if err != nil {
			return notFound(err, fmt.Sprintf("no category with id %d", id))
		}
		return c.JSON(toCategoryResponse(cat))
	}
}

// POST /category/add
func CreateCategoryHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vals, err := requireFields(c, FieldCategoryName, FieldCategoryDescription)
		if err != nil {
			return err
		}

		cat := models.Category{
			Name:        vals[FieldCategoryName],
			Description: vals[FieldCategoryDescription],
		}
		if err := s.Categories.Create(c.UserContext(), &cat); err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(toCategoryResponse(&cat))
	}
}

// PUT /category/update
func UpdateCategoryHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vals, err := requireFields(c, FieldCategoryID, FieldCategoryName, FieldCategoryDescription)
		if err != nil {
			return err
		}
		id, err := parseID(FieldCategoryID, vals[FieldCategoryID])
		if err != nil {
			return err
		}

		ctx := c.UserContext()
		cat, err := s.Categories.GetByID(ctx, id)
		if err != nil {
			return notFound(err, fmt.Sprintf("no category with id %d", id))
		}

		cat.Name = vals[FieldCategoryName]
		cat.Description = vals[FieldCategoryDescription]

		if err := s.Categories.Update(ctx, cat); err != nil {
			return err
		}

		return c.JSON(toCategoryResponse(cat))
	}
}

// DELETE /category/delete/:id
func DeleteCategoryHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		ctx := c.UserContext()
		cat, err := s.Categories.GetByID(ctx, id)
		if err != nil {
			return notFound(err, fmt.Sprintf("no category with id %d", id))
		}

		if err := s.Categories.Delete(ctx, cat); err != nil {
			return err
		}

		return c.JSON(MessageResponse{Message: "category deleted"})
	}
}
