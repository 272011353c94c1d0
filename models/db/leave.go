package dbmodels

import (
	"time"

	"hrms-backend/models"
)

type Leave struct {
	BaseModel
	EmployeeID string `gorm:"type:varchar(36);index"`
	LeaveType  string `gorm:"type:varchar(100)"`
	// даты хранятся как начало суток, проверка пересечения включает границы
	StartDate       time.Time
	EndDate         time.Time
	Reason          string
	Status          models.LeaveStatus `gorm:"type:varchar(50);index"`
	AppliedOn       time.Time
	ApprovedBy      *string `gorm:"type:varchar(36)"`
	ApprovedOn      *time.Time
	RejectedBy      *string `gorm:"type:varchar(36)"`
	RejectedOn      *time.Time
	RejectionReason string
	CancelledOn     *time.Time
}

func (l Leave) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

type LeaveBalance struct {
	BaseModel
	EmployeeID      string `gorm:"type:varchar(36);uniqueIndex"`
	TotalLeaves     int
	UsedLeaves      int
	RemainingLeaves int
}
