package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hrms-backend/controllers"
	authhandler "hrms-backend/lib/auth"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	authapimodels "hrms-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	auth := fiber.New()
	app.Mount("/auth", auth)
	auth.Post("login", controller.login)
	auth.Post("refresh", controller.refresh)

	authorized := fiber.New()
	auth.Mount("/", authorized)
	authorized.Use(middleware.AuthorizationRequired())
	authorized.Post("logout", controller.logout)

	users := fiber.New()
	auth.Mount("/users", users)
	users.Use(middleware.AuthorizationRequired())
	users.Use(middleware.AdminRoleRequired())
	users.Post("create", controller.userCreate)
}

// @Summary Аутентификация пользователя
// @Tags Авторизация
// @Description Аутентификация пользователя
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (a *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(payload)
	if err != nil {
		return a.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление токена
// @Tags Авторизация
// @Description Обновление пары токенов по refresh токену
// @Param	body				body		authapimodels.RefreshRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh [post]
func (a *authApiController) refresh(ctx *fiber.Ctx) error {
	var payload authapimodels.RefreshRequest
	if err := a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Refresh(payload)
	if err != nil {
		return a.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выход
// @Tags Авторизация
// @Description Отзыв refresh токена
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/logout [post]
func (a *authApiController) logout(ctx *fiber.Ctx) error {
	if err := authhandler.Instance.Logout(middleware.GetUserID(ctx)); err != nil {
		return a.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Создание пользователя
// @Tags Авторизация
// @Description Создание учетной записи, доступно администратору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		authapimodels.CreateUserRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/users/create [post]
func (a *authApiController) userCreate(ctx *fiber.Ctx) error {
	var payload authapimodels.CreateUserRequest
	if err := a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := authhandler.Instance.CreateUser(payload)
	if err != nil {
		return a.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}
