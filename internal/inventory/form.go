package inventory

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Form field names accepted by the create/update endpoints.
const (
	FieldArticleID          = "ArticleId"
	FieldArticleName        = "ArticleName"
	FieldArticleEAN13       = "ArticleEAN13"
	FieldArticleBrand       = "ArticleBrand"
	FieldArticlePicture     = "ArticlePicture"
	FieldArticlePrice       = "ArticlePrice"
	FieldArticleDescription = "ArticleDescription"

	FieldCategoryID          = "CategoryId"
	FieldCategoryName        = "CategoryName"
	FieldCategoryDescription = "CategoryDescription"

	FieldCommandID      = "CommandId"
	FieldCommandDate    = "CommandDate"
	FieldCommandComment = "CommandComment"

	FieldStockID           = "StockId"
	FieldStockDate         = "StockDate"
	FieldStockQuantity     = "StockQuantity"
	FieldStockTransferType = "StockTransferType"
	FieldStockComment      = "StockComment"
	FieldStockIDs          = "StockIds"
)

const dateLayout = "2006-01-02"

func badRequest(format string, args ...any) error {
	return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf(format, args...))
}

// requireFields returns the trimmed value of every key, stopping at the
// first one that is missing or blank.
func requireFields(c *fiber.Ctx, keys ...string) (map[string]string, error) {
	vals := make(map[string]string, len(keys))
	for _, k := range keys {
		v := strings.TrimSpace(c.FormValue(k))
		if v == "" {
			return nil, badRequest("missing required field %s", k)
		}
		vals[k] = v
	}
	return vals, nil
}

func parseID(field, raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, badRequest("%s must be a positive integer, got %q", field, raw)
	}
	return uint(id), nil
}

// parseOptionalID returns nil for a blank value.
func parseOptionalID(field, raw string) (*uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := parseID(field, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseDate(field, raw string) (time.Time, error) {
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, badRequest("%s must be a date formatted YYYY-MM-DD, got %q", field, raw)
	}
	return d, nil
}

// maxPrice is the first value a decimal(10,2) column cannot hold.
var maxPrice = decimal.New(1, 8)

func parsePrice(field, raw string) (decimal.Decimal, error) {
	p, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, badRequest("invalid numeric value for %s: %q", field, raw)
	}
	if p.IsNegative() {
		return decimal.Zero, badRequest("%s must not be negative", field)
	}
	if !p.Equal(p.Round(2)) {
		return decimal.Zero, badRequest("%s accepts at most 2 decimal places, got %q", field, raw)
	}
	if p.GreaterThanOrEqual(maxPrice) {
		return decimal.Zero, badRequest("%s must be less than %s", field, maxPrice)
	}
	return p, nil
}

func parseQuantity(field, raw string) (int, error) {
	q, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest("invalid numeric value for %s: %q", field, raw)
	}
	if q <= 0 {
		return 0, badRequest("%s must be greater than 0", field)
	}
	return q, nil
}

// formIDList reads a list of ids sent either as repeated fields or as one
// comma separated value. present reports whether the field was sent at
// all; a present but blank field yields an empty list.
func formIDList(c *fiber.Ctx, field string) (ids []uint, present bool, err error) {
	args := c.Request().PostArgs()
	if !args.Has(field) {
		return nil, false, nil
	}

	ids = make([]uint, 0)
	seen := make(map[uint]bool)
	for _, v := range args.PeekMulti(field) {
		for _, part := range strings.Split(string(v), ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := parseID(field, part)
			if err != nil {
				return nil, true, err
			}
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids, true, nil
}

func pathID(c *fiber.Ctx) (uint, error) {
	return parseID("id", c.Params("id"))
}
