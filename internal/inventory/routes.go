package inventory

import (
	"github.com/Sixta74/evalS4IL/internal/store"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the /article, /category, /command and /stock
// groups on r. Fixed paths are registered before the :id catch-alls.
func RegisterRoutes(r fiber.Router, s *store.Store) {
	articles := r.Group("/article")
	articles.Post("/add", CreateArticleHandler(s))
	articles.Put("/update", UpdateArticleHandler(s))
	articles.Get("/all", ListArticlesHandler(s))
	articles.Get("/stock/:id", GetArticleByStockHandler(s))
	articles.Get("/category/:id", ListArticlesByCategoryHandler(s))
	articles.Get("/:id", GetArticleHandler(s))
	articles.Delete("/delete/:id", DeleteArticleHandler(s))

	categories := r.Group("/category")
	categories.Post("/add", CreateCategoryHandler(s))
	categories.Put("/update", UpdateCategoryHandler(s))
	categories.Get("/all", ListCategoriesHandler(s))
	categories.Get("/:id", GetCategoryHandler(s))
	categories.Delete("/delete/:id", DeleteCategoryHandler(s))

	commands := r.Group("/command")
	commands.Post("/add", CreateCommandHandler(s))
	commands.Put("/update", UpdateCommandHandler(s))
	commands.Get("/all", ListCommandsHandler(s))
	commands.Get("/stock/:id", GetCommandByStockHandler(s))
	commands.Get("/:id", GetCommandHandler(s))
	commands.Delete("/delete/:id", DeleteCommandHandler(s))

	stocks := r.Group("/stock")
	stocks.Post("/add", CreateStockHandler(s))
	stocks.Put("/update", UpdateStockHandler(s))
	stocks.Get("/all", ListStocksHandler(s))
	stocks.Get("/article/:id", ListStocksByArticleHandler(s))
	stocks.Get("/command/:id", ListStocksByCommandHandler(s))
	stocks.Get("/transfer/:type", ListStocksByTransferTypeHandler(s))
	stocks.Get("/:id", GetStockHandler(s))
	stocks.Delete("/delete/:id", DeleteStockHandler(s))
}
