package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hrms-backend/controllers"
	handler "hrms-backend/lib/leave"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	leaveapimodels "hrms-backend/models/api/leave"
)

type leaveApiController struct {
	controllers.BaseAPIController
}

func InitLeaveApiRouters(app *fiber.App) {
	controller := leaveApiController{}
	leaves := fiber.New()
	app.Mount("/leaves", leaves)
	leaves.Use(middleware.AuthorizationRequired())
	leaves.Post("apply", controller.apply)
	leaves.Get("my", controller.my)
	leaves.Get("balance", controller.balance)
	leaves.Post("cancel/:id", controller.cancel)

	approvers := fiber.New()
	leaves.Mount("/", approvers)
	approvers.Use(middleware.ApproverRoleRequired())
	approvers.Get("pending", controller.pending)
	approvers.Get("history/:employeeID", controller.history)
	approvers.Post("approve/:id", controller.approve)
	approvers.Post("reject/:id", controller.reject)

	hr := fiber.New()
	leaves.Mount("/", hr)
	hr.Use(middleware.HRRoleRequired())
	hr.Post("balance/create/:employeeID", controller.createBalance)
}

// @Summary Заявка на отпуск
// @Tags Отпуска
// @Description Подача заявки на отпуск
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		leaveapimodels.ApplyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/apply [post]
func (l *leaveApiController) apply(ctx *fiber.Ctx) error {
	var payload leaveapimodels.ApplyData
	if err := l.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := handler.Instance.Apply(middleware.GetEmployeeID(ctx), payload)
	if err != nil {
		return l.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Мои отпуска
// @Tags Отпуска
// @Description Заявки на отпуск текущего сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.View}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/my [get]
func (l *leaveApiController) my(ctx *fiber.Ctx) error {
	list, err := handler.Instance.History(middleware.GetEmployeeID(ctx))
	if err != nil {
		return l.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Баланс отпусков
// @Tags Отпуска
// @Description Баланс дней отпуска текущего сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.BalanceView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/balance [get]
func (l *leaveApiController) balance(ctx *fiber.Ctx) error {
	view, err := handler.Instance.Balance(middleware.GetEmployeeID(ctx))
	if err != nil {
		return l.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Отпуска сотрудника
// @Tags Отпуска
// @Description История заявок на отпуск сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employeeID			path		string	true	"employee ID"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.View}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/history/{employeeID} [get]
func (l *leaveApiController) history(ctx *fiber.Ctx) error {
	value := ctx.Params("employeeID")
	if value == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("табельный номер не указан"))
	}
	list, err := handler.Instance.History(value)
	if err != nil {
		return l.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Заявки на согласовании
// @Tags Отпуска
// @Description Все заявки на отпуск в статусе Pending
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employee_id			query		string	false	"табельный номер"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.View}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/pending [get]
func (l *leaveApiController) pending(ctx *fiber.Ctx) error {
	list, err := handler.Instance.ListPending(ctx.Query("employee_id"))
	if err != nil {
		return l.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Согласование отпуска
// @Tags Отпуска
// @Description Согласование заявки на отпуск со списанием дней
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"leave ID"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/approve/{id} [post]
func (l *leaveApiController) approve(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ID заявки не указан"))
	}
	view, err := handler.Instance.Approve(id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		return l.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Отклонение отпуска
// @Tags Отпуска
// @Description Отклонение заявки на отпуск
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"leave ID"
// @Param	body				body		leaveapimodels.RejectData	false	"request body"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/reject/{id} [post]
func (l *leaveApiController) reject(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ID заявки не указан"))
	}
	payload := leaveapimodels.RejectData{}
	if len(ctx.Body()) != 0 {
		if err := l.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	view, err := handler.Instance.Reject(id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx), payload.Reason)
	if err != nil {
		return l.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Создание баланса отпусков
// @Tags Отпуска
// @Description Создание баланса дней отпуска сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   employeeID			path		string	true	"employee ID"
// @Param	body				body		leaveapimodels.BalanceCreateData	false	"request body"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.BalanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/balance/create/{employeeID} [post]
func (l *leaveApiController) createBalance(ctx *fiber.Ctx) error {
	value := ctx.Params("employeeID")
	if value == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("табельный номер не указан"))
	}
	payload := leaveapimodels.BalanceCreateData{}
	if len(ctx.Body()) != 0 {
		if err := l.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	view, err := handler.Instance.CreateBalance(value, payload.Allowance)
	if err != nil {
		return l.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Отмена отпуска
// @Tags Отпуска
// @Description Отмена согласованного отпуска с возвратом дней
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"leave ID"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leaves/cancel/{id} [post]
func (l *leaveApiController) cancel(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ID заявки не указан"))
	}
	view, err := handler.Instance.Cancel(id, middleware.GetEmployeeID(ctx))
	if err != nil {
		return l.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
