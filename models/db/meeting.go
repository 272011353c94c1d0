package dbmodels

import (
	"github.com/lib/pq"

	"hrms-backend/models"
)

type Meeting struct {
	BaseModel
	Title       string `gorm:"type:varchar(255)"`
	Date        string `gorm:"type:varchar(10);index"` // YYYY-MM-DD
	OrganizerID string `gorm:"type:varchar(36);index"`
	// время в минутах от полуночи, пересечение проверяется строго:
	// встречи встык конфликтом не считаются
	StartMinutes int
	EndMinutes   int
	Participants pq.StringArray       `gorm:"type:text[]"`
	Status       models.MeetingStatus `gorm:"type:varchar(50);index"`
}
