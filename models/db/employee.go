package dbmodels

import (
	"time"

	"hrms-backend/models"
)

type Employee struct {
	BaseModel
	EmployeeID  string `gorm:"type:varchar(36);uniqueIndex"`
	Name        string `gorm:"type:varchar(255)"`
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	Role        string `gorm:"type:varchar(100)"` // должность, не путать с ролью учетной записи
	Department  string `gorm:"type:varchar(255)"`
	Salary      float64
	Status      models.EmployeeStatus `gorm:"type:varchar(50)"`
	JoiningDate *time.Time
	ManagerID   *string `gorm:"type:varchar(36)"`
}

type UserAccount struct {
	BaseModel
	Username           string `gorm:"type:varchar(255);uniqueIndex"`
	Password           string `gorm:"type:varchar(255)"`
	Role               models.UserRole `gorm:"type:varchar(50)"`
	EmployeeID         string `gorm:"type:varchar(36);index"`
	RefreshToken       *string `gorm:"type:varchar(255);index"`
	RefreshTokenExpiry *time.Time
	LastLogin          *time.Time
}
