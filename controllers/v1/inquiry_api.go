package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"site-backend/controllers"
	inquiryhandler "site-backend/lib/inquiry"
	apimodels "site-backend/models/api"
	formsapimodels "site-backend/models/api/forms"
)

type inquiryApiController struct {
	controllers.BaseAPIController
}

func InitInquiryApiRouters(app *fiber.App) {
	controller := inquiryApiController{}
	app.Route("inquiries", func(router fiber.Router) {
		router.Post("investment", controller.investment)
		router.Post("partnership", controller.partnership)
	})
}

// @Summary Заявка инвестора
// @Tags Формы
// @Description Отправка заявки инвестора
// @Param	body body	formsapimodels.InvestmentInquiryPayload	true	"request body"
// @Success 200 {object} apimodels.Response{data=formsapimodels.FormState[formsapimodels.InvestmentInquiryPayload]}
// @Failure 400 {object} apimodels.Response{data=formsapimodels.FormState[formsapimodels.InvestmentInquiryPayload]}
// @Failure 502 {object} apimodels.Response{data=formsapimodels.FormState[formsapimodels.InvestmentInquiryPayload]}
// @router /api/v1/inquiries/investment [post]
func (c *inquiryApiController) investment(ctx *fiber.Ctx) error {
	var payload formsapimodels.InvestmentInquiryPayload
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	state, err := inquiryhandler.Instance.Investment(c.GetContext(ctx), payload)
	return controllers.SendFormState(ctx, state, err)
}

// @Summary Заявка на партнёрство
// @Tags Формы
// @Description Отправка заявки на партнёрство
// @Param	body body	formsapimodels.PartnershipInquiryPayload	true	"request body"
// @Success 200 {object} apimodels.Response{data=formsapimodels.FormState[formsapimodels.PartnershipInquiryPayload]}
// @Failure 400 {object} apimodels.Response{data=formsapimodels.FormState[formsapimodels.PartnershipInquiryPayload]}
// @Failure 502 {object} apimodels.Response{data=formsapimodels.FormState[formsapimodels.PartnershipInquiryPayload]}
// @router /api/v1/inquiries/partnership [post]
func (c *inquiryApiController) partnership(ctx *fiber.Ctx) error {
	var payload formsapimodels.PartnershipInquiryPayload
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	state, err := inquiryhandler.Instance.Partnership(c.GetContext(ctx), payload)
	return controllers.SendFormState(ctx, state, err)
}
