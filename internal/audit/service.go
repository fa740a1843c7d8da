package audit

import (
	"encoding/json"
	"fmt"

	"github.com/Sixta74/evalS4IL/internal/models"

	"gorm.io/gorm"
)

type LogOptions struct {
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// WriteLog stores one audit row through db. Gateways pass their open
// transaction so the row commits or rolls back with the change itself.
func WriteLog(db *gorm.DB, opts LogOptions) error {
	log := models.AuditLog{
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  snapshot(opts.Before),
		AfterData:   snapshot(opts.After),
	}

	if err := db.Create(&log).Error; err != nil {
		return fmt.Errorf("could not write audit log: %w", err)
	}
	return nil
}

type Filter struct {
	EntityType string
	EntityID   uint
}

// ListLogs returns the newest entries first.
func ListLogs(db *gorm.DB, f Filter) ([]models.AuditLog, error) {
	dbq := db.Model(&models.AuditLog{})
	if f.EntityType != "" {
		dbq = dbq.Where("entity_type = ?", f.EntityType)
	}
	if f.EntityID > 0 {
		dbq = dbq.Where("entity_id = ?", f.EntityID)
	}

	logs := make([]models.AuditLog, 0)
	if err := dbq.Order("id DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("could not list audit logs: %w", err)
	}
	return logs, nil
}

// snapshot encodes v as JSON, "null" when v is nil or not encodable.
func snapshot(v any) string {
	if v == nil {
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
