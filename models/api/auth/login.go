package authapimodels

import (
	"hrms-backend/models"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Username == "" {
		return errors.New("не указано имя пользователя")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type JWTResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshRequest) Validate() error {
	if r.RefreshToken == "" {
		return errors.New("не указан refresh токен")
	}
	return nil
}

type CreateUserRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	EmployeeID string `json:"employee_id"`
}

func (r CreateUserRequest) Validate() error {
	if r.Username == "" {
		return errors.New("не указано имя пользователя")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	if _, err := models.ParseRole(r.Role); err != nil {
		return err
	}
	return nil
}
