package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "hrms-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.UserAccount{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры UserAccount")
	}
	if err := DB.AutoMigrate(&dbmodels.ApprovalRequest{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApprovalRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.SalaryHistory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры SalaryHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.PromotionHistory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PromotionHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.Leave{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Leave")
	}
	if err := DB.AutoMigrate(&dbmodels.LeaveBalance{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры LeaveBalance")
	}
	if err := DB.AutoMigrate(&dbmodels.Meeting{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Meeting")
	}
	if err := DB.AutoMigrate(&dbmodels.Project{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Project")
	}
	if err := DB.AutoMigrate(&dbmodels.Task{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Task")
	}
	if err := DB.AutoMigrate(&dbmodels.TaskComment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры TaskComment")
	}
	if err := DB.AutoMigrate(&dbmodels.AuditLog{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AuditLog")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
