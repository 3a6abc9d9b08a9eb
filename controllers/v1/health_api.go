package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"site-backend/controllers"
	"site-backend/db"
	cmshealthworker "site-backend/lib/cms-api/health-worker"
	apimodels "site-backend/models/api"
)

type healthApiController struct {
	controllers.BaseAPIController
}

type healthView struct {
	DB  bool                    `json:"db"`
	CMS *cmshealthworker.Status `json:"cms,omitempty"`
}

func InitHealthApiRouters(app *fiber.App) {
	controller := healthApiController{}
	app.Get("health", controller.health)
}

// @Summary Состояние сервиса
// @Tags Служебное
// @Description Доступность БД и результат последней проверки CMS
// @Success 200 {object} apimodels.Response
// @router /api/v1/health [get]
func (c *healthApiController) health(ctx *fiber.Ctx) error {
	view := healthView{
		DB: db.DB != nil && db.PingDB() == nil,
	}
	if status, ok := cmshealthworker.LastStatus(); ok {
		view.CMS = &status
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
