package promotionhistorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.PromotionHistory) (id string, err error)
	ListByEmployee(employeeID string) (list []dbmodels.PromotionHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PromotionHistory) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByEmployee(employeeID string) (list []dbmodels.PromotionHistory, err error) {
	list = []dbmodels.PromotionHistory{}
	err = i.db.
		Where("employee_id = ?", employeeID).
		Order("effective_date desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
