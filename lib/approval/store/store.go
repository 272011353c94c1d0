package approvalstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type ListFilter struct {
	Kind       models.RequestKind
	EmployeeID string
	Status     models.RequestStatus
	Stage      models.ApprovalStage
	Limit      int
	Offset     int
}

type Provider interface {
	Create(rec dbmodels.ApprovalRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.ApprovalRequest, err error)
	FindPending(kind models.RequestKind, employeeID string) (rec *dbmodels.ApprovalRequest, err error)
	CountApprovedInYear(kind models.RequestKind, employeeID string, year int) (count int64, err error)
	List(filter ListFilter) (list []dbmodels.ApprovalRequest, rowCount int64, err error)
	AdvanceStage(id string, from, to models.ApprovalStage) (ok bool, err error)
	Finalize(id string, from models.ApprovalStage, approvedBy, remarks string) (ok bool, err error)
	RejectPending(id string, rejectedBy, remarks string) (ok bool, err error)
	SetDocumentKey(id, key string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApprovalRequest) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ApprovalRequest, error) {
	rec := dbmodels.ApprovalRequest{}
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

func (i impl) FindPending(kind models.RequestKind, employeeID string) (*dbmodels.ApprovalRequest, error) {
	rec := dbmodels.ApprovalRequest{}
	err := i.db.
		Where("kind = ?", kind).
		Where("employee_id = ?", employeeID).
		Where("status = ?", models.RequestStatusPending).
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

func (i impl) CountApprovedInYear(kind models.RequestKind, employeeID string, year int) (int64, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)
	var count int64
	err := i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Where("kind = ?", kind).
		Where("employee_id = ?", employeeID).
		Where("status = ?", models.RequestStatusApproved).
		Where("effective_date >= ? AND effective_date < ?", yearStart, yearEnd).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) List(filter ListFilter) (list []dbmodels.ApprovalRequest, rowCount int64, err error) {
	list = []dbmodels.ApprovalRequest{}
	tx := i.db.Model(&dbmodels.ApprovalRequest{})
	if filter.Kind != "" {
		tx = tx.Where("kind = ?", filter.Kind)
	}
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Stage != "" {
		tx = tx.Where("approval_stage = ?", filter.Stage)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		tx = tx.Offset(filter.Offset)
	}
	err = tx.Order("created_at desc").Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

// AdvanceStage переводит заявку на следующий этап.
// Статус и текущий этап входят в условие, при конкурентном решении
// обновится только одна из попыток
func (i impl) AdvanceStage(id string, from, to models.ApprovalStage) (bool, error) {
	tx := i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Where("id = ?", id).
		Where("status = ?", models.RequestStatusPending).
		Where("approval_stage = ?", from).
		Updates(map[string]interface{}{
			"approval_stage": to,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) Finalize(id string, from models.ApprovalStage, approvedBy, remarks string) (bool, error) {
	now := time.Now()
	tx := i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Where("id = ?", id).
		Where("status = ?", models.RequestStatusPending).
		Where("approval_stage = ?", from).
		Updates(map[string]interface{}{
			"status":         models.RequestStatusApproved,
			"approval_stage": models.StageNone,
			"approved_by":    approvedBy,
			"remarks":        remarks,
			"decided_at":     now,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) RejectPending(id string, rejectedBy, remarks string) (bool, error) {
	now := time.Now()
	tx := i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Where("id = ?", id).
		Where("status = ?", models.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":         models.RequestStatusRejected,
			"approval_stage": models.StageNone,
			"rejected_by":    rejectedBy,
			"remarks":        remarks,
			"decided_at":     now,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) SetDocumentKey(id, key string) error {
	return i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"document_key": key,
		}).
		Error
}
