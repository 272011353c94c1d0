package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hrms-backend/controllers"
	analyticshandler "hrms-backend/lib/analytics"
	handler "hrms-backend/lib/employee"
	employeestore "hrms-backend/lib/employee/store"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	employeeapimodels "hrms-backend/models/api/employee"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	employees := fiber.New()
	app.Mount("/employees", employees)
	employees.Use(middleware.AuthorizationRequired())
	employees.Get("list", controller.list)
	employees.Get("get/:employeeID", controller.get)

	hrOnly := fiber.New()
	employees.Mount("/", hrOnly)
	hrOnly.Use(middleware.HRRoleRequired())
	hrOnly.Post("create", controller.create)
	hrOnly.Put("update/:employeeID", controller.update)
	hrOnly.Get("departments", controller.departments)

	adminOnly := fiber.New()
	employees.Mount("/", adminOnly)
	adminOnly.Use(middleware.AdminRoleRequired())
	adminOnly.Delete("delete/:employeeID", controller.remove)
}

// @Summary Создание сотрудника
// @Tags Сотрудники
// @Description Создание сотрудника вместе с учетной записью
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		employeeapimodels.CreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/create [post]
func (e *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.CreateData
	if err := e.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := handler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return e.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Карточка сотрудника
// @Tags Сотрудники
// @Description Карточка сотрудника по табельному номеру
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employeeID			path		string	true	"employee ID"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.View}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/get/{employeeID} [get]
func (e *employeeApiController) get(ctx *fiber.Ctx) error {
	value := ctx.Params("employeeID")
	if value == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("табельный номер не указан"))
	}
	view, err := handler.Instance.Get(value)
	if err != nil {
		return e.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Список сотрудников
// @Tags Сотрудники
// @Description Список сотрудников с фильтром по отделу и статусу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   department			query		string	false	"отдел"
// @Param   status				query		string	false	"статус"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]employeeapimodels.View}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/list [get]
func (e *employeeApiController) list(ctx *fiber.Ctx) error {
	filter := employeestore.ListFilter{
		Department: ctx.Query("department"),
		Status:     ctx.Query("status"),
		ManagerID:  ctx.Query("manager_id"),
		Limit:      ctx.QueryInt("limit"),
		Offset:     ctx.QueryInt("offset"),
	}
	list, rowCount, err := handler.Instance.List(filter)
	if err != nil {
		return e.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Изменение сотрудника
// @Tags Сотрудники
// @Description Частичное изменение карточки сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employeeID			path		string	true	"employee ID"
// @Param	body				body		employeeapimodels.UpdateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/update/{employeeID} [put]
func (e *employeeApiController) update(ctx *fiber.Ctx) error {
	value := ctx.Params("employeeID")
	if value == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("табельный номер не указан"))
	}
	var payload employeeapimodels.UpdateData
	if err := e.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := handler.Instance.Update(middleware.GetUserID(ctx), value, payload)
	if err != nil {
		return e.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Сводка по отделам
// @Tags Сотрудники
// @Description Численность и средний оклад по отделам
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]analyticshandler.DepartmentRow}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/departments [get]
func (e *employeeApiController) departments(ctx *fiber.Ctx) error {
	rows, err := analyticshandler.Instance.DepartmentHeadcount()
	if err != nil {
		return e.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rows))
}

// @Summary Удаление сотрудника
// @Tags Сотрудники
// @Description Удаление сотрудника и его учетной записи
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employeeID			path		string	true	"employee ID"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/delete/{employeeID} [delete]
func (e *employeeApiController) remove(ctx *fiber.Ctx) error {
	value := ctx.Params("employeeID")
	if value == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("табельный номер не указан"))
	}
	if err := handler.Instance.Delete(middleware.GetUserID(ctx), value); err != nil {
		return e.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
