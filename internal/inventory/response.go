package inventory

import "github.com/Sixta74/evalS4IL/internal/models"

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type StockResponse struct {
	ID           uint                `json:"id"`
	Date         string              `json:"date"`
	Quantity     int                 `json:"quantity"`
	TransferType models.TransferType `json:"transfer_type"`
	Comment      string              `json:"comment"`
	ArticleID    uint                `json:"article_id"`
	CommandID    uint                `json:"command_id"`
}

type ArticleResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	EAN13       string            `json:"ean13"`
	Brand       string            `json:"brand"`
	PictureURL  string            `json:"picture_url"`
	Price       float64           `json:"price"`
	Description string            `json:"description"`
	CategoryID  *uint             `json:"category_id"`
	Category    *CategoryResponse `json:"category"`
	Stocks      []StockResponse   `json:"stocks"`
}

type CommandResponse struct {
	ID      uint            `json:"id"`
	Date    string          `json:"date"`
	Comment string          `json:"comment"`
	Stocks  []StockResponse `json:"stocks"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func toCategoryResponse(cat *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
	}
}

func toStockResponse(s *models.Stock) StockResponse {
	return StockResponse{
		ID:           s.ID,
		Date:         s.Date.Format(dateLayout),
		Quantity:     s.Quantity,
		TransferType: s.TransferType,
		Comment:      s.Comment,
		ArticleID:    s.ArticleID,
		CommandID:    s.CommandID,
	}
}

func toStockResponses(stocks []models.Stock) []StockResponse {
	res := make([]StockResponse, 0, len(stocks))
	for i := range stocks {
		res = append(res, toStockResponse(&stocks[i]))
	}
	return res
}

func toArticleResponse(a *models.Article) ArticleResponse {
	res := ArticleResponse{
		ID:          a.ID,
		Name:        a.Name,
		EAN13:       a.EAN13,
		Brand:       a.Brand,
		PictureURL:  a.PictureURL,
		Price:       a.Price.InexactFloat64(),
		Description: a.Description,
		CategoryID:  a.CategoryID,
		Stocks:      toStockResponses(a.Stocks),
	}
	if a.Category != nil {
		cat := toCategoryResponse(a.Category)
		res.Category = &cat
	}
	return res
}

func toCommandResponse(com *models.Command) CommandResponse {
	return CommandResponse{
		ID:      com.ID,
		Date:    com.Date.Format(dateLayout),
		Comment: com.Comment,
		Stocks:  toStockResponses(com.Stocks),
	}
}
