package audit

import (
	"strconv"

	"github.com/Sixta74/evalS4IL/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuditLogResponse struct {
	ID          uint               `json:"id"`
	CreatedAt   string             `json:"created_at"`
	EntityType  string             `json:"entity_type"`
	EntityID    uint               `json:"entity_id"`
	Action      models.AuditAction `json:"action"`
	Description string             `json:"description"`
	BeforeData  string             `json:"before_data"`
	AfterData   string             `json:"after_data"`
}

// GET /audit-logs?entity_type=article&entity_id=1
func ListAuditLogsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := Filter{EntityType: c.Query("entity_type")}

		if s := c.Query("entity_id"); s != "" {
			id, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "entity_id must be a positive integer")
			}
			f.EntityID = uint(id)
		}

		logs, err := ListLogs(db.WithContext(c.UserContext()), f)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		resp := make([]AuditLogResponse, 0, len(logs))
		for _, log := range logs {
			resp = append(resp, AuditLogResponse{
				ID:          log.ID,
				CreatedAt:   log.CreatedAt.Format("2006-01-02 15:04:05"),
				EntityType:  log.EntityType,
				EntityID:    log.EntityID,
				Action:      log.Action,
				Description: log.Description,
				BeforeData:  log.BeforeData,
				AfterData:   log.AfterData,
			})
		}

		return c.JSON(resp)
	}
}
