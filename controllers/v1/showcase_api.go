package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"site-backend/controllers"
	showcasehandler "site-backend/lib/showcase"
)

type showcaseApiController struct {
	controllers.BaseAPIController
}

func InitShowcaseApiRouters(app *fiber.App) {
	controller := showcaseApiController{}
	app.Get("partners", controller.partners)
	app.Get("reviews", controller.reviews)
}

// @Summary Партнёры
// @Tags Витрина
// @Description Список партнёров для главной страницы
// @Success 200 {object} apimodels.Response{data=result.Result[[]showcaseapimodels.Partner]}
// @Failure 502 {object} apimodels.Response{data=result.Result[[]showcaseapimodels.Partner]}
// @router /api/v1/partners [get]
func (c *showcaseApiController) partners(ctx *fiber.Ctx) error {
	res, err := showcasehandler.Instance.Partners(c.GetContext(ctx))
	return controllers.SendResult(ctx, res, err)
}

// @Summary Отзывы
// @Tags Витрина
// @Description Отзывы клиентов, рейтинг от 0 до 5
// @Success 200 {object} apimodels.Response{data=result.Result[[]showcaseapimodels.Review]}
// @Failure 502 {object} apimodels.Response{data=result.Result[[]showcaseapimodels.Review]}
// @router /api/v1/reviews [get]
func (c *showcaseApiController) reviews(ctx *fiber.Ctx) error {
	res, err := showcasehandler.Instance.Reviews(c.GetContext(ctx))
	return controllers.SendResult(ctx, res, err)
}
