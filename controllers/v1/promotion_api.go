package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"hrms-backend/controllers"
	approvalhandler "hrms-backend/lib/approval"
	handler "hrms-backend/lib/promotion"
	"hrms-backend/middleware"
	"hrms-backend/models"
	apimodels "hrms-backend/models/api"
	approvalapimodels "hrms-backend/models/api/approval"
)

type promotionApiController struct {
	controllers.BaseAPIController
}

func InitPromotionApiRouters(app *fiber.App) {
	controller := promotionApiController{}
	promotions := fiber.New()
	app.Mount("/promotions", promotions)
	promotions.Use(middleware.AuthorizationRequired())
	promotions.Get("list", controller.list)
	promotions.Get("get/:id", controller.get)
	promotions.Get("history/:employeeID", controller.history)
	promotions.Get("letter/:id", controller.letter)

	approvers := fiber.New()
	promotions.Mount("/", approvers)
	approvers.Use(middleware.ApproverRoleRequired())
	approvers.Post("create", controller.create)
	approvers.Post("approve/:id", controller.approve)
	approvers.Post("reject/:id", controller.reject)
}

// @Summary Заявка на повышение
// @Tags Повышения
// @Description Создание заявки на повышение сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		approvalapimodels.PromotionCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/promotions/create [post]
func (p *promotionApiController) create(ctx *fiber.Ctx) error {
	var payload approvalapimodels.PromotionCreateData
	if err := p.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := handler.Instance.CreateRequest(middleware.GetUserID(ctx), payload)
	if err != nil {
		return p.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Согласование заявки
// @Tags Повышения
// @Description Согласование текущего этапа заявки на повышение
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"request ID"
// @Param	body				body		approvalapimodels.DecisionData	false	"request body"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/promotions/approve/{id} [post]
func (p *promotionApiController) approve(ctx *fiber.Ctx) error {
	return decideRequest(&p.BaseAPIController, ctx, true)
}

// @Summary Отклонение заявки
// @Tags Повышения
// @Description Отклонение заявки на повышение
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"request ID"
// @Param	body				body		approvalapimodels.DecisionData	false	"request body"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/promotions/reject/{id} [post]
func (p *promotionApiController) reject(ctx *fiber.Ctx) error {
	return decideRequest(&p.BaseAPIController, ctx, false)
}

// @Summary Список заявок
// @Tags Повышения
// @Description Список заявок на повышение
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"статус"
// @Param   employee_id			query		string	false	"табельный номер"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]approvalapimodels.RequestView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/promotions/list [get]
func (p *promotionApiController) list(ctx *fiber.Ctx) error {
	return listRequests(&p.BaseAPIController, ctx, models.KindPromotion)
}

// @Summary Заявка
// @Tags Повышения
// @Description Заявка на повышение по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"request ID"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.RequestView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/promotions/get/{id} [get]
func (p *promotionApiController) get(ctx *fiber.Ctx) error {
	return getRequest(&p.BaseAPIController, ctx, models.KindPromotion)
}

// @Summary История повышений
// @Tags Повышения
// @Description История повышений сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employeeID			path		string	true	"employee ID"
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/promotions/history/{employeeID} [get]
func (p *promotionApiController) history(ctx *fiber.Ctx) error {
	value := ctx.Params("employeeID")
	if value == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("табельный номер не указан"))
	}
	if !canReadEmployeeData(ctx, value) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
	}
	list, err := handler.Instance.History(value)
	if err != nil {
		return p.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Письмо о повышении
// @Tags Повышения
// @Description Скачивание pdf письма по утвержденной заявке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"request ID"
// @Success 200 {file} binary
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/promotions/letter/{id} [get]
func (p *promotionApiController) letter(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ID заявки не указан"))
	}
	rec, err := approvalhandler.Instance.GetByID(id)
	if err != nil {
		return p.SendError(ctx, err)
	}
	if rec.Kind != models.KindPromotion {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("заявка не найдена"))
	}
	// сотрудник скачивает только свое письмо
	if !canReadEmployeeData(ctx, rec.EmployeeID) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
	}
	fileBody, err := handler.Instance.GetLetter(id)
	if err != nil {
		return p.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="promotion_%v.pdf"`, id))
	return ctx.Status(fiber.StatusOK).Send(fileBody)
}
