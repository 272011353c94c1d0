package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hrms-backend/controllers"
	handler "hrms-backend/lib/meeting"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	meetingapimodels "hrms-backend/models/api/meeting"
)

type meetingApiController struct {
	controllers.BaseAPIController
}

func InitMeetingApiRouters(app *fiber.App) {
	controller := meetingApiController{}
	meetings := fiber.New()
	app.Mount("/meetings", meetings)
	meetings.Use(middleware.AuthorizationRequired())
	meetings.Post("create", controller.create)
	meetings.Get("my", controller.my)
	meetings.Get("get/:id", controller.get)
	meetings.Post("cancel/:id", controller.cancel)
	meetings.Post("availability", controller.availability)
}

// @Summary Создание встречи
// @Tags Встречи
// @Description Создание встречи с проверкой занятости участников
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		meetingapimodels.CreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=meetingapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/meetings/create [post]
func (m *meetingApiController) create(ctx *fiber.Ctx) error {
	var payload meetingapimodels.CreateData
	if err := m.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := handler.Instance.Create(middleware.GetEmployeeID(ctx), payload)
	if err != nil {
		return m.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Мои встречи
// @Tags Встречи
// @Description Встречи, где текущий сотрудник участник или организатор
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]meetingapimodels.View}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/meetings/my [get]
func (m *meetingApiController) my(ctx *fiber.Ctx) error {
	list, err := handler.Instance.ListMine(middleware.GetEmployeeID(ctx))
	if err != nil {
		return m.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Встреча
// @Tags Встречи
// @Description Встреча по идентификатору, доступна только участникам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"meeting ID"
// @Success 200 {object} apimodels.Response{data=meetingapimodels.View}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/meetings/get/{id} [get]
func (m *meetingApiController) get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ID встречи не указан"))
	}
	view, err := handler.Instance.Get(id, middleware.GetEmployeeID(ctx))
	if err != nil {
		return m.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Отмена встречи
// @Tags Встречи
// @Description Отмена встречи организатором
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"meeting ID"
// @Success 200 {object} apimodels.Response{data=meetingapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/meetings/cancel/{id} [post]
func (m *meetingApiController) cancel(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ID встречи не указан"))
	}
	view, err := handler.Instance.Cancel(id, middleware.GetEmployeeID(ctx))
	if err != nil {
		return m.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Проверка занятости
// @Tags Встречи
// @Description Проверка доступности участников в указанное время
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		meetingapimodels.AvailabilityData	true	"request body"
// @Success 200 {object} apimodels.Response{data=meetingapimodels.AvailabilityView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/meetings/availability [post]
func (m *meetingApiController) availability(ctx *fiber.Ctx) error {
	var payload meetingapimodels.AvailabilityData
	if err := m.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := handler.Instance.CheckAvailability(payload)
	if err != nil {
		return m.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
