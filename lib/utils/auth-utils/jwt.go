package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"hrms-backend/config"
	"hrms-backend/models"
)

func GetToken(userID, employeeID string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"sub":         userID,
		"employee_id": employeeID,
		"role":        string(role),
		"exp":         time.Now().Add(time.Hour * time.Duration(config.Conf.Auth.AccessExpireHours)).Unix(),
		"iat":         time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}
