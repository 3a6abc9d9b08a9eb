package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"site-backend/config"
	"site-backend/controllers"
	adminpanelhandler "site-backend/lib/admin-panel"
	adminpanelauthhandler "site-backend/lib/admin-panel/auth"
	"site-backend/middleware"
	apimodels "site-backend/models/api"
	adminapimodels "site-backend/models/api/admin"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Post("login", controller.login)

	// доступ только администраторам
	audit := fiber.New()
	app.Mount("/audit", audit)
	audit.Use(middleware.AuthorizationRequired(config.Conf.Auth.JWTSecret))
	audit.Use(middleware.AdminRoleRequired())
	audit.Post("list", controller.auditList)
	audit.Post("export", controller.auditExport)
}

// @Summary Аутентификация администратора
// @Tags Админ панель
// @Description Аутентификация администратора
// @Param	body				body		adminapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=adminapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @router /api/v1/admin/login [post]
func (c *adminApiController) login(ctx *fiber.Ctx) error {
	var payload adminapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := adminpanelauthhandler.Instance.Login(payload.Login, payload.Password)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Журнал ошибок внешнего API
// @Tags Админ панель
// @Description Журнал ошибок обращений в CMS
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 adminapimodels.AuditFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]adminapimodels.AuditView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/audit/list [post]
func (c *adminApiController) auditList(ctx *fiber.Ctx) error {
	var payload adminapimodels.AuditFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := adminpanelhandler.Instance.AuditList(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала внешнего API")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.ScrollerResponse{
		Response: apimodels.NewResponse(list),
		RowCount: rowCount,
	})
}

// @Summary Выгрузка журнала ошибок внешнего API
// @Tags Админ панель
// @Description Выгрузка журнала ошибок обращений в CMS в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 adminapimodels.AuditFilter	true	"request body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/audit/export [post]
func (c *adminApiController) auditExport(ctx *fiber.Ctx) error {
	var payload adminapimodels.AuditFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := adminpanelhandler.Instance.AuditExport(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки журнала внешнего API")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="audit.xlsx"`)
	return ctx.SendStream(buf, buf.Len())
}
