package leavestore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Leave) (id string, err error)
	GetByID(id string) (rec *dbmodels.Leave, err error)
	ListByEmployee(employeeID string) (list []dbmodels.Leave, err error)
	ListByStatus(status models.LeaveStatus, employeeID string) (list []dbmodels.Leave, err error)
	// FindOverlapping ищет заявки сотрудника в статусах Pending и Approved,
	// пересекающиеся с периодом, границы включительно
	FindOverlapping(employeeID string, startDate, endDate time.Time) (list []dbmodels.Leave, err error)
	SetApproved(id, approvedBy string) (ok bool, err error)
	SetRejected(id, rejectedBy, reason string) (ok bool, err error)
	SetCancelled(id string) (ok bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Leave) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Leave, error) {
	rec := dbmodels.Leave{}
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

func (i impl) ListByEmployee(employeeID string) (list []dbmodels.Leave, err error) {
	list = []dbmodels.Leave{}
	err = i.db.
		Where("employee_id = ?", employeeID).
		Order("applied_on desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByStatus(status models.LeaveStatus, employeeID string) (list []dbmodels.Leave, err error) {
	list = []dbmodels.Leave{}
	tx := i.db.
		Where("status = ?", status)
	if employeeID != "" {
		tx = tx.Where("employee_id = ?", employeeID)
	}
	err = tx.
		Order("applied_on").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) FindOverlapping(employeeID string, startDate, endDate time.Time) (list []dbmodels.Leave, err error) {
	list = []dbmodels.Leave{}
	err = i.db.
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []models.LeaveStatus{models.LeaveStatusPending, models.LeaveStatusApproved}).
		Where("start_date <= ?", endDate).
		Where("end_date >= ?", startDate).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetApproved(id, approvedBy string) (bool, error) {
	now := time.Now()
	tx := i.db.
		Model(&dbmodels.Leave{}).
		Where("id = ?", id).
		Where("status = ?", models.LeaveStatusPending).
		Updates(map[string]interface{}{
			"status":      models.LeaveStatusApproved,
			"approved_by": approvedBy,
			"approved_on": now,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) SetRejected(id, rejectedBy, reason string) (bool, error) {
	now := time.Now()
	tx := i.db.
		Model(&dbmodels.Leave{}).
		Where("id = ?", id).
		Where("status = ?", models.LeaveStatusPending).
		Updates(map[string]interface{}{
			"status":           models.LeaveStatusRejected,
			"rejected_by":      rejectedBy,
			"rejected_on":      now,
			"rejection_reason": reason,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) SetCancelled(id string) (bool, error) {
	now := time.Now()
	tx := i.db.
		Model(&dbmodels.Leave{}).
		Where("id = ?", id).
		Where("status = ?", models.LeaveStatusApproved).
		Updates(map[string]interface{}{
			"status":       models.LeaveStatusCancelled,
			"cancelled_on": now,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
