package usersstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.UserAccount) (id string, err error)
	GetByID(id string) (rec *dbmodels.UserAccount, err error)
	FindByUsername(username string) (rec *dbmodels.UserAccount, err error)
	FindByRefreshToken(token string) (rec *dbmodels.UserAccount, err error)
	Update(id string, updMap map[string]interface{}) error
	DeleteByEmployeeID(employeeID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.UserAccount) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.UserAccount, error) {
	rec := dbmodels.UserAccount{}
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

func (i impl) FindByUsername(username string) (*dbmodels.UserAccount, error) {
	rec := dbmodels.UserAccount{}
	err := i.db.
		Where("username = ?", username).
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

func (i impl) FindByRefreshToken(token string) (*dbmodels.UserAccount, error) {
	rec := dbmodels.UserAccount{}
	err := i.db.
		Where("refresh_token = ?", token).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.UserAccount{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) DeleteByEmployeeID(employeeID string) error {
	return i.db.
		Where("employee_id = ?", employeeID).
		Delete(&dbmodels.UserAccount{}).
		Error
}
