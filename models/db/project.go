package dbmodels

import (
	"time"

	"hrms-backend/models"
)

type Project struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Description string
	ManagerID   string `gorm:"type:varchar(36);index"`
	Deadline    *time.Time
	Status      models.ProjectStatus `gorm:"type:varchar(50)"`
	Tasks       []Task               `gorm:"foreignKey:ProjectID"`
}

type Task struct {
	BaseModel
	ProjectID   string `gorm:"type:varchar(36);index"`
	Title       string `gorm:"type:varchar(255)"`
	Description string
	AssignedTo  string            `gorm:"type:varchar(36);index"`
	Status      models.TaskStatus `gorm:"type:varchar(50)"`
	Weight      int
	Priority    string `gorm:"type:varchar(50)"`
	Deadline    *time.Time
	Comments    []TaskComment `gorm:"foreignKey:TaskID"`
}

type TaskComment struct {
	BaseModel
	TaskID   string `gorm:"type:varchar(36);index"`
	AuthorID string `gorm:"type:varchar(36)"`
	Comment  string
}
