package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hrms-backend/controllers"
	analyticshandler "hrms-backend/lib/analytics"
	approvalhandler "hrms-backend/lib/approval"
	approvalstore "hrms-backend/lib/approval/store"
	handler "hrms-backend/lib/salary"
	"hrms-backend/middleware"
	"hrms-backend/models"
	apimodels "hrms-backend/models/api"
	approvalapimodels "hrms-backend/models/api/approval"
	dbmodels "hrms-backend/models/db"
)

type salaryApiController struct {
	controllers.BaseAPIController
}

func InitSalaryApiRouters(app *fiber.App) {
	controller := salaryApiController{}
	salary := fiber.New()
	app.Mount("/salary", salary)
	salary.Use(middleware.AuthorizationRequired())
	salary.Get("list", controller.list)
	salary.Get("get/:id", controller.get)
	salary.Get("history/:employeeID", controller.history)

	approvers := fiber.New()
	salary.Mount("/", approvers)
	approvers.Use(middleware.ApproverRoleRequired())
	approvers.Post("create", controller.create)
	approvers.Post("approve/:id", controller.approve)
	approvers.Post("reject/:id", controller.reject)

	hr := fiber.New()
	salary.Mount("/", hr)
	hr.Use(middleware.HRRoleRequired())
	hr.Get("statistics", controller.statistics)
}

// @Summary Заявка на изменение оклада
// @Tags Оклады
// @Description Создание заявки на изменение оклада
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		approvalapimodels.SalaryCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/salary/create [post]
func (s *salaryApiController) create(ctx *fiber.Ctx) error {
	var payload approvalapimodels.SalaryCreateData
	if err := s.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := handler.Instance.CreateRequest(middleware.GetUserID(ctx), payload)
	if err != nil {
		return s.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Согласование заявки
// @Tags Оклады
// @Description Согласование текущего этапа заявки на изменение оклада
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"request ID"
// @Param	body				body		approvalapimodels.DecisionData	false	"request body"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/salary/approve/{id} [post]
func (s *salaryApiController) approve(ctx *fiber.Ctx) error {
	return decideRequest(&s.BaseAPIController, ctx, true)
}

// @Summary Отклонение заявки
// @Tags Оклады
// @Description Отклонение заявки на изменение оклада
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"request ID"
// @Param	body				body		approvalapimodels.DecisionData	false	"request body"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/salary/reject/{id} [post]
func (s *salaryApiController) reject(ctx *fiber.Ctx) error {
	return decideRequest(&s.BaseAPIController, ctx, false)
}

// @Summary Список заявок
// @Tags Оклады
// @Description Список заявок на изменение оклада
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"статус"
// @Param   employee_id			query		string	false	"табельный номер"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]approvalapimodels.RequestView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/salary/list [get]
func (s *salaryApiController) list(ctx *fiber.Ctx) error {
	return listRequests(&s.BaseAPIController, ctx, models.KindSalaryChange)
}

// @Summary Заявка
// @Tags Оклады
// @Description Заявка на изменение оклада по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"request ID"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.RequestView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/salary/get/{id} [get]
func (s *salaryApiController) get(ctx *fiber.Ctx) error {
	return getRequest(&s.BaseAPIController, ctx, models.KindSalaryChange)
}

// @Summary История окладов
// @Tags Оклады
// @Description История изменений оклада сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employeeID			path		string	true	"employee ID"
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/salary/history/{employeeID} [get]
func (s *salaryApiController) history(ctx *fiber.Ctx) error {
	value := ctx.Params("employeeID")
	if value == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("табельный номер не указан"))
	}
	if !canReadEmployeeData(ctx, value) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
	}
	list, err := handler.Instance.History(value)
	if err != nil {
		return s.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Статистика по заявкам
// @Tags Оклады
// @Description Сводка заявок на изменение оклада по статусам
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.SalaryStatisticsView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/salary/statistics [get]
func (s *salaryApiController) statistics(ctx *fiber.Ctx) error {
	view, err := analyticshandler.Instance.SalaryStatistics()
	if err != nil {
		return s.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

func decideRequest(base *controllers.BaseAPIController, ctx *fiber.Ctx, approve bool) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ID заявки не указан"))
	}
	payload := approvalapimodels.DecisionData{}
	if len(ctx.Body()) != 0 {
		if err := base.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	actorID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	var err error
	var rec *dbmodels.ApprovalRequest
	var message string
	if approve {
		rec, message, err = approvalhandler.Instance.Approve(id, actorID, role, payload.Remarks)
	} else {
		rec, err = approvalhandler.Instance.Reject(id, actorID, role, payload.Remarks)
	}
	if err != nil {
		return base.SendError(ctx, err)
	}
	view := approvalapimodels.RequestConvert(*rec)
	if approve {
		// пояснение для клиента: промежуточный этап или финальное утверждение
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponseWithMessage(message, view))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

func listRequests(base *controllers.BaseAPIController, ctx *fiber.Ctx, kind models.RequestKind) error {
	filter := approvalstore.ListFilter{
		Kind:       kind,
		EmployeeID: ctx.Query("employee_id"),
		Status:     models.RequestStatus(ctx.Query("status")),
		Limit:      ctx.QueryInt("limit"),
		Offset:     ctx.QueryInt("offset"),
	}
	// рядовой сотрудник видит только свои заявки
	if !middleware.GetUserRole(ctx).IsApprover() {
		filter.EmployeeID = middleware.GetEmployeeID(ctx)
	}
	list, rowCount, err := approvalhandler.Instance.List(filter)
	if err != nil {
		return base.SendError(ctx, err)
	}
	views := make([]approvalapimodels.RequestView, 0, len(list))
	for _, rec := range list {
		views = append(views, approvalapimodels.RequestConvert(rec))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(views, rowCount))
}

func getRequest(base *controllers.BaseAPIController, ctx *fiber.Ctx, kind models.RequestKind) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ID заявки не указан"))
	}
	rec, err := approvalhandler.Instance.GetByID(id)
	if err != nil {
		return base.SendError(ctx, err)
	}
	if rec.Kind != kind {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("заявка не найдена"))
	}
	if !middleware.GetUserRole(ctx).IsApprover() && rec.EmployeeID != middleware.GetEmployeeID(ctx) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
	}
	view := approvalapimodels.RequestConvert(*rec)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

func canReadEmployeeData(ctx *fiber.Ctx, employeeID string) bool {
	return middleware.GetUserRole(ctx).IsApprover() || employeeID == middleware.GetEmployeeID(ctx)
}
