package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"site-backend/controllers"
	contacthandler "site-backend/lib/contact"
	apimodels "site-backend/models/api"
	formsapimodels "site-backend/models/api/forms"
)

type contactApiController struct {
	controllers.BaseAPIController
}

func InitContactApiRouters(app *fiber.App) {
	controller := contactApiController{}
	app.Post("contact", controller.submit)
}

// @Summary Обращение
// @Tags Формы
// @Description Отправка формы обратной связи
// @Param	body body	formsapimodels.ContactPayload	true	"request body"
// @Success 200 {object} apimodels.Response{data=formsapimodels.FormState[formsapimodels.ContactPayload]}
// @Failure 400 {object} apimodels.Response{data=formsapimodels.FormState[formsapimodels.ContactPayload]}
// @Failure 502 {object} apimodels.Response{data=formsapimodels.FormState[formsapimodels.ContactPayload]}
// @router /api/v1/contact [post]
func (c *contactApiController) submit(ctx *fiber.Ctx) error {
	var payload formsapimodels.ContactPayload
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	state, err := contacthandler.Instance.Submit(c.GetContext(ctx), payload)
	return controllers.SendFormState(ctx, state, err)
}
