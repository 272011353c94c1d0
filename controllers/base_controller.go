package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hrms-backend/models"
	apimodels "hrms-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

// SendError переводит бизнес-ошибку в http-статус,
// все прочие ошибки отдаются как 500 без деталей
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	appErr := &models.AppError{}
	if errors.As(err, &appErr) {
		return ctx.Status(appErr.HTTPStatus()).JSON(apimodels.NewError(appErr.Message))
	}
	log.WithField("path", ctx.Path()).WithError(err).Error("внутренняя ошибка")
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("внутренняя ошибка сервера"))
}
