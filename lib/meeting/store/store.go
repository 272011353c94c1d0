package meetingstore

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Meeting) (id string, err error)
	GetByID(id string) (rec *dbmodels.Meeting, err error)
	// ListForParticipant возвращает встречи организатора или участника,
	// отмененные не попадают в выдачу
	ListForParticipant(employeeID string) (list []dbmodels.Meeting, err error)
	// FindConflicts ищет неотмененные встречи на ту же дату с общими
	// участниками и строгим пересечением по времени
	FindConflicts(date string, participants []string, startMinutes, endMinutes int) (list []dbmodels.Meeting, err error)
	SetCancelled(id, organizerID string) (ok bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Meeting) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Meeting, error) {
	rec := dbmodels.Meeting{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListForParticipant(employeeID string) (list []dbmodels.Meeting, err error) {
	list = []dbmodels.Meeting{}
	err = i.db.
		Where("? = ANY(participants) OR organizer_id = ?", employeeID, employeeID).
		Where("status <> ?", models.MeetingCancelled).
		Order("date, start_minutes").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) FindConflicts(date string, participants []string, startMinutes, endMinutes int) (list []dbmodels.Meeting, err error) {
	list = []dbmodels.Meeting{}
	err = i.db.
		Where("date = ?", date).
		Where("status <> ?", models.MeetingCancelled).
		Where("participants && ?", pq.StringArray(participants)).
		Where("start_minutes < ?", endMinutes).
		Where("end_minutes > ?", startMinutes).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetCancelled(id, organizerID string) (bool, error) {
	tx := i.db.
		Model(&dbmodels.Meeting{}).
		Where("id = ?", id).
		Where("organizer_id = ?", organizerID).
		Where("status = ?", models.MeetingScheduled).
		Updates(map[string]interface{}{
			"status": models.MeetingCancelled,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
