package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"hrms-backend/controllers"
	handler "hrms-backend/lib/audit"
	auditstore "hrms-backend/lib/audit/store"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	auditapimodels "hrms-backend/models/api/audit"
)

type auditApiController struct {
	controllers.BaseAPIController
}

func InitAuditApiRouters(app *fiber.App) {
	controller := auditApiController{}
	audit := fiber.New()
	app.Mount("/audit", audit)
	audit.Use(middleware.AuthorizationRequired())
	audit.Use(middleware.HRRoleRequired())
	audit.Get("list", controller.list)

	adminOnly := fiber.New()
	audit.Mount("/", adminOnly)
	adminOnly.Use(middleware.AdminRoleRequired())
	adminOnly.Get("export", controller.export)
}

// @Summary Журнал аудита
// @Tags Аудит
// @Description Записи журнала аудита с фильтрами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   module				query		string	false	"модуль"
// @Param   action				query		string	false	"действие"
// @Param   performed_by		query		string	false	"инициатор"
// @Param   record_id			query		string	false	"ID записи"
// @Param   date_from			query		string	false	"дата с (YYYY-MM-DD)"
// @Param   date_to				query		string	false	"дата по (YYYY-MM-DD)"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]auditapimodels.View}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/audit/list [get]
func (a *auditApiController) list(ctx *fiber.Ctx) error {
	filter, err := a.parseFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := handler.Instance.List(*filter)
	if err != nil {
		return a.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(auditapimodels.ConvertList(list), rowCount))
}

// @Summary Выгрузка журнала аудита
// @Tags Аудит
// @Description Выгрузка журнала аудита в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   module				query		string	false	"модуль"
// @Param   action				query		string	false	"действие"
// @Param   performed_by		query		string	false	"инициатор"
// @Param   record_id			query		string	false	"ID записи"
// @Param   date_from			query		string	false	"дата с (YYYY-MM-DD)"
// @Param   date_to				query		string	false	"дата по (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/audit/export [get]
func (a *auditApiController) export(ctx *fiber.Ctx) error {
	filter, err := a.parseFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileBody, err := handler.Instance.Export(*filter)
	if err != nil {
		return a.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="audit_log_%v.xlsx"`, time.Now().Format("2006-01-02")))
	return ctx.Status(fiber.StatusOK).Send(fileBody)
}

func (a *auditApiController) parseFilter(ctx *fiber.Ctx) (*auditstore.ListFilter, error) {
	var query auditapimodels.Filter
	if err := ctx.QueryParser(&query); err != nil {
		return nil, errors.New("некорректные параметры фильтра")
	}
	filter := auditstore.ListFilter{
		Module:      query.Module,
		Action:      query.Action,
		PerformedBy: query.PerformedBy,
		RecordID:    query.RecordID,
		Limit:       query.Limit,
		Offset:      query.Offset,
	}
	if query.DateFrom != "" {
		date, err := time.Parse(auditDateFormat, query.DateFrom)
		if err != nil {
			return nil, errors.New("date_from должна быть в формате YYYY-MM-DD")
		}
		filter.DateFrom = &date
	}
	if query.DateTo != "" {
		date, err := time.Parse(auditDateFormat, query.DateTo)
		if err != nil {
			return nil, errors.New("date_to должна быть в формате YYYY-MM-DD")
		}
		// верхняя граница не включается, сдвигаем на сутки
		end := date.AddDate(0, 0, 1)
		filter.DateTo = &end
	}
	return &filter, nil
}

const auditDateFormat = "2006-01-02"
