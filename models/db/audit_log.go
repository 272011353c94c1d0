package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"hrms-backend/models"
)

// AuditLog - журнал действий, записи не изменяются и не удаляются
type AuditLog struct {
	BaseModel
	AuditID     string             `gorm:"type:varchar(36);uniqueIndex"`
	Action      models.AuditAction `gorm:"type:varchar(50);index"`
	Module      string             `gorm:"type:varchar(100);index"`
	RecordID    string             `gorm:"type:varchar(36);index"`
	PerformedBy string             `gorm:"type:varchar(36);index"`
	Timestamp   time.Time          `gorm:"index"`
	Changes     EntityChanges      `gorm:"type:jsonb"`
	Remarks     string
	Status      string `gorm:"type:varchar(50)"`
}

type EntityChanges struct {
	Data []FieldChanges `json:"data"` // Список изменений
}

type FieldChanges struct {
	Field    string `json:"field"`     // Измененное поле
	OldValue any    `json:"old_value"` // Старое значение
	NewValue any    `json:"new_value"` // Новое значение
}

func (j EntityChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *EntityChanges) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}
