package auditstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hrms-backend/models/db"
)

type ListFilter struct {
	Module      string
	Action      string
	PerformedBy string
	RecordID    string
	DateFrom    *time.Time
	DateTo      *time.Time
	Limit       int
	Offset      int
}

type Provider interface {
	Create(rec dbmodels.AuditLog) (id string, err error)
	List(filter ListFilter) (list []dbmodels.AuditLog, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AuditLog) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(filter ListFilter) (list []dbmodels.AuditLog, rowCount int64, err error) {
	list = []dbmodels.AuditLog{}
	tx := i.db.Model(&dbmodels.AuditLog{})
	if filter.Module != "" {
		tx = tx.Where("module = ?", filter.Module)
	}
	if filter.Action != "" {
		tx = tx.Where("action = ?", filter.Action)
	}
	if filter.PerformedBy != "" {
		tx = tx.Where("performed_by = ?", filter.PerformedBy)
	}
	if filter.RecordID != "" {
		tx = tx.Where("record_id = ?", filter.RecordID)
	}
	if filter.DateFrom != nil {
		tx = tx.Where("timestamp >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		tx = tx.Where("timestamp < ?", *filter.DateTo)
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
	err = tx.Order("timestamp desc").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	return list, rowCount, nil
}
