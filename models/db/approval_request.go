package dbmodels

import (
	"time"

	"hrms-backend/models"
)

// ApprovalRequest - единая таблица заявок на изменение оклада и на повышение.
// Kind определяет, какая группа полей заполнена
type ApprovalRequest struct {
	BaseModel
	Kind       models.RequestKind `gorm:"type:varchar(50);index:idx_approval_kind_employee"`
	EmployeeID string             `gorm:"type:varchar(36);index:idx_approval_kind_employee"`

	// оклад
	CurrentSalary      float64
	ProposedSalary     float64
	SalaryIncrease     float64
	IncreasePercentage float64

	// повышение
	OldRole string `gorm:"type:varchar(100)"`
	NewRole string `gorm:"type:varchar(100)"`

	EffectiveDate time.Time
	Reason        string

	Status        models.RequestStatus `gorm:"type:varchar(50);index"`
	ApprovalStage models.ApprovalStage `gorm:"type:varchar(50)"`
	InitiatedBy   string               `gorm:"type:varchar(36)"`
	ApprovedBy    *string              `gorm:"type:varchar(36)"`
	RejectedBy    *string              `gorm:"type:varchar(36)"`
	Remarks       string
	DecidedAt     *time.Time

	// ключ сгенерированного письма о повышении в файловом хранилище
	DocumentKey string `gorm:"type:varchar(255)"`
}

type SalaryHistory struct {
	BaseModel
	EmployeeID         string `gorm:"type:varchar(36);index"`
	OldSalary          float64
	NewSalary          float64
	SalaryIncrease     float64
	IncreasePercentage float64
	EffectiveDate      time.Time
	Reason             string
	ApprovedBy         string `gorm:"type:varchar(36)"`
}

type PromotionHistory struct {
	BaseModel
	EmployeeID    string `gorm:"type:varchar(36);index"`
	OldRole       string `gorm:"type:varchar(100)"`
	NewRole       string `gorm:"type:varchar(100)"`
	EffectiveDate time.Time
	ApprovedBy    string `gorm:"type:varchar(36)"`
}
