package db

import (
	log "github.com/sirupsen/logrus"

	usersstore "hrms-backend/lib/auth/users-store"
	authutils "hrms-backend/lib/utils/auth-utils"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

func InitPreload() {
	addDefaultAdmin()
}

func addDefaultAdmin() {
	store := usersstore.NewInstance(DB)
	existedRec, err := store.FindByUsername("admin")
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора по умолчанию")
		return
	}
	if existedRec != nil {
		return
	}
	hash, err := authutils.HashPassword("admin123")
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора по умолчанию")
		return
	}
	rec := dbmodels.UserAccount{
		Username: "admin",
		Password: hash,
		Role:     models.AdminRole,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора по умолчанию")
		return
	}
	log.Warn("создан администратор по умолчанию, смените пароль после первого входа")
}
