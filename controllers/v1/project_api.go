package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hrms-backend/controllers"
	handler "hrms-backend/lib/project"
	"hrms-backend/middleware"
	"hrms-backend/models"
	apimodels "hrms-backend/models/api"
	projectapimodels "hrms-backend/models/api/project"
)

type projectApiController struct {
	controllers.BaseAPIController
}

func InitProjectApiRouters(app *fiber.App) {
	controller := projectApiController{}
	projects := fiber.New()
	app.Mount("/projects", projects)
	projects.Use(middleware.AuthorizationRequired())
	projects.Get("list", controller.list)
	projects.Get("get/:id", controller.get)
	projects.Get("progress/:id", controller.progress)
	projects.Get("tasks/my", controller.myTasks)
	// статус задачи доступен всем авторизованным, права проверяет обработчик
	projects.Put("tasks/status/:taskID", controller.updateTaskStatus)
	projects.Post("tasks/comment/:taskID", controller.addTaskComment)

	approvers := fiber.New()
	projects.Mount("/", approvers)
	approvers.Use(middleware.ApproverRoleRequired())
	approvers.Post("create", controller.create)
	approvers.Post("tasks/create/:id", controller.addTask)
	approvers.Delete("tasks/delete/:taskID", controller.deleteTask)
}

// @Summary Создание проекта
// @Tags Проекты
// @Description Создание проекта
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		projectapimodels.CreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=projectapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/create [post]
func (p *projectApiController) create(ctx *fiber.Ctx) error {
	var payload projectapimodels.CreateData
	if err := p.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := handler.Instance.Create(middleware.GetEmployeeID(ctx), payload)
	if err != nil {
		return p.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Список проектов
// @Tags Проекты
// @Description Список проектов с прогрессом
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]projectapimodels.View}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/list [get]
func (p *projectApiController) list(ctx *fiber.Ctx) error {
	list, err := handler.Instance.List(middleware.GetEmployeeID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		return p.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Проект
// @Tags Проекты
// @Description Проект с задачами и прогрессом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"project ID"
// @Success 200 {object} apimodels.Response{data=projectapimodels.View}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/get/{id} [get]
func (p *projectApiController) get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ID проекта не указан"))
	}
	view, err := handler.Instance.Get(id)
	if err != nil {
		return p.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Прогресс проекта
// @Tags Проекты
// @Description Взвешенный процент выполнения задач проекта
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"project ID"
// @Success 200 {object} apimodels.Response{data=float64}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/progress/{id} [get]
func (p *projectApiController) progress(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ID проекта не указан"))
	}
	progress, err := handler.Instance.Progress(id)
	if err != nil {
		return p.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(progress))
}

// @Summary Создание задачи
// @Tags Проекты
// @Description Добавление задачи в проект
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"project ID"
// @Param	body				body		projectapimodels.TaskCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=projectapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/tasks/create/{id} [post]
func (p *projectApiController) addTask(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ID проекта не указан"))
	}
	var payload projectapimodels.TaskCreateData
	if err := p.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := handler.Instance.AddTask(id, middleware.GetEmployeeID(ctx), middleware.GetUserRole(ctx), payload)
	if err != nil {
		return p.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Удаление задачи
// @Tags Проекты
// @Description Удаление задачи вместе с комментариями
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   taskID				path		string	true	"task ID"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/tasks/delete/{taskID} [delete]
func (p *projectApiController) deleteTask(ctx *fiber.Ctx) error {
	taskID := ctx.Params("taskID")
	if taskID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ID задачи не указан"))
	}
	if err := handler.Instance.DeleteTask(taskID, middleware.GetEmployeeID(ctx), middleware.GetUserRole(ctx)); err != nil {
		return p.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Статус задачи
// @Tags Проекты
// @Description Изменение статуса задачи исполнителем или руководителем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   taskID				path		string	true	"task ID"
// @Param	body				body		projectapimodels.TaskStatusData	true	"request body"
// @Success 200 {object} apimodels.Response{data=projectapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/tasks/status/{taskID} [put]
func (p *projectApiController) updateTaskStatus(ctx *fiber.Ctx) error {
	taskID := ctx.Params("taskID")
	if taskID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ID задачи не указан"))
	}
	var payload projectapimodels.TaskStatusData
	if err := p.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := handler.Instance.UpdateTaskStatus(
		taskID,
		middleware.GetEmployeeID(ctx),
		middleware.GetUserRole(ctx),
		models.TaskStatus(payload.Status),
	)
	if err != nil {
		return p.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Комментарий к задаче
// @Tags Проекты
// @Description Добавление комментария к задаче
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   taskID				path		string	true	"task ID"
// @Param	body				body		projectapimodels.TaskCommentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=projectapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/tasks/comment/{taskID} [post]
func (p *projectApiController) addTaskComment(ctx *fiber.Ctx) error {
	taskID := ctx.Params("taskID")
	if taskID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("ID задачи не указан"))
	}
	var payload projectapimodels.TaskCommentData
	if err := p.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := handler.Instance.AddTaskComment(taskID, middleware.GetEmployeeID(ctx), payload.Comment)
	if err != nil {
		return p.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Мои задачи
// @Tags Проекты
// @Description Задачи, назначенные на текущего сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]projectapimodels.TaskView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/projects/tasks/my [get]
func (p *projectApiController) myTasks(ctx *fiber.Ctx) error {
	list, err := handler.Instance.MyTasks(middleware.GetEmployeeID(ctx))
	if err != nil {
		return p.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
