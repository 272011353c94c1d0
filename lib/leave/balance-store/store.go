package leavebalancestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	GetByEmployee(employeeID string) (rec *dbmodels.LeaveBalance, err error)
	Create(rec dbmodels.LeaveBalance) (id string, err error)
	// Debit списывает дни атомарно, остаток входит в условие обновления
	Debit(employeeID string, days int) (ok bool, err error)
	Refund(employeeID string, days int) (ok bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByEmployee(employeeID string) (*dbmodels.LeaveBalance, error) {
	rec := dbmodels.LeaveBalance{}
	err := i.db.
		Where("employee_id = ?", employeeID).
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

func (i impl) Create(rec dbmodels.LeaveBalance) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Debit(employeeID string, days int) (bool, error) {
	tx := i.db.
		Model(&dbmodels.LeaveBalance{}).
		Where("employee_id = ?", employeeID).
		Where("remaining_leaves >= ?", days).
		Updates(map[string]interface{}{
			"used_leaves":      gorm.Expr("used_leaves + ?", days),
			"remaining_leaves": gorm.Expr("remaining_leaves - ?", days),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) Refund(employeeID string, days int) (bool, error) {
	tx := i.db.
		Model(&dbmodels.LeaveBalance{}).
		Where("employee_id = ?", employeeID).
		Where("used_leaves >= ?", days).
		Updates(map[string]interface{}{
			"used_leaves":      gorm.Expr("used_leaves - ?", days),
			"remaining_leaves": gorm.Expr("remaining_leaves + ?", days),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
