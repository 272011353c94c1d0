package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"hrms-backend/config"
	"hrms-backend/db"
	usersstore "hrms-backend/lib/auth/users-store"
	authutils "hrms-backend/lib/utils/auth-utils"
	"hrms-backend/lib/utils/helpers"
	"hrms-backend/models"
	authapimodels "hrms-backend/models/api/auth"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Login(data authapimodels.LoginRequest) (resp *authapimodels.JWTResponse, err error)
	Refresh(data authapimodels.RefreshRequest) (resp *authapimodels.JWTResponse, err error)
	Logout(userID string) error
	CreateUser(data authapimodels.CreateUserRequest) (id string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i *impl) Login(data authapimodels.LoginRequest) (*authapimodels.JWTResponse, error) {
	user, err := i.store.FindByUsername(strings.ToLower(data.Username))
	if err != nil {
		return nil, errors.Wrap(err, "ошибка поиска пользователя")
	}
	if user == nil || !authutils.VerifyPassword(user.Password, data.Password) {
		return nil, models.NewAuthorizationError("неверное имя пользователя или пароль")
	}
	return i.issueTokens(user)
}

func (i *impl) Refresh(data authapimodels.RefreshRequest) (*authapimodels.JWTResponse, error) {
	user, err := i.store.FindByRefreshToken(data.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка поиска пользователя")
	}
	if user == nil {
		return nil, models.NewAuthorizationError("refresh токен недействителен")
	}
	if user.RefreshTokenExpiry == nil || user.RefreshTokenExpiry.Before(time.Now()) {
		return nil, models.NewAuthorizationError("refresh токен истек")
	}
	return i.issueTokens(user)
}

func (i *impl) Logout(userID string) error {
	return i.store.Update(userID, map[string]interface{}{
		"refresh_token":        nil,
		"refresh_token_expiry": nil,
	})
}

func (i *impl) CreateUser(data authapimodels.CreateUserRequest) (string, error) {
	role, err := models.ParseRole(data.Role)
	if err != nil {
		return "", models.NewValidationError("%v", err)
	}
	username := strings.ToLower(data.Username)
	existedRec, err := i.store.FindByUsername(username)
	if err != nil {
		return "", errors.Wrap(err, "ошибка поиска пользователя")
	}
	if existedRec != nil {
		return "", models.NewConflictError("пользователь %v уже существует", username)
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		return "", errors.Wrap(err, "ошибка хеширования пароля")
	}
	rec := dbmodels.UserAccount{
		Username:   username,
		Password:   hash,
		Role:       role,
		EmployeeID: data.EmployeeID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		if helpers.IsUniqueViolation(err) {
			return "", models.NewConflictError("пользователь %v уже существует", username)
		}
		return "", errors.Wrap(err, "ошибка создания пользователя")
	}
	return id, nil
}

func (i *impl) issueTokens(user *dbmodels.UserAccount) (*authapimodels.JWTResponse, error) {
	accessToken, err := authutils.GetToken(user.ID, user.EmployeeID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка выпуска токена")
	}
	// refresh токен непрозрачный и живет только в БД
	refreshToken := uuid.NewString()
	expiry := time.Now().Add(time.Hour * time.Duration(config.Conf.Auth.RefreshExpireHours))
	now := time.Now()
	err = i.store.Update(user.ID, map[string]interface{}{
		"refresh_token":        refreshToken,
		"refresh_token_expiry": expiry,
		"last_login":           now,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сохранения refresh токена")
	}
	return &authapimodels.JWTResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}
