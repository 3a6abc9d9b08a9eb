package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"site-backend/config"
	"site-backend/controllers"
	bloghandler "site-backend/lib/blog"
	apimodels "site-backend/models/api"
)

type blogApiController struct {
	controllers.BaseAPIController
}

func InitBlogApiRouters(app *fiber.App) {
	controller := blogApiController{}
	app.Route("blogs", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":id", controller.get)
	})
}

// @Summary Список публикаций
// @Tags Блог
// @Description Страница списка публикаций с данными для пагинации
// @Param   page	query	int	false	"Страница (1,2,3..)"
// @Param   limit	query	int	false	"Записей на странице"
// @Success 200 {object} apimodels.Response{data=result.Result[blogapimodels.BlogListView]}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response{data=result.Result[blogapimodels.BlogListView]}
// @router /api/v1/blogs [get]
func (c *blogApiController) list(ctx *fiber.Ctx) error {
	page, limit, err := c.GetPagination(ctx, config.Conf.Pagination.BlogPageSize, config.Conf.Pagination.MaxPageSize)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	res, err := bloghandler.Instance.List(c.GetContext(ctx), page, limit)
	return controllers.SendResult(ctx, res, err)
}

// @Summary Публикация
// @Tags Блог
// @Description Публикация с html содержимым и стилем направления текста
// @Param   id	path	string	true	"Идентификатор публикации"
// @Success 200 {object} apimodels.Response{data=result.Result[blogapimodels.BlogView]}
// @Failure 404 {object} apimodels.Response{data=result.Result[blogapimodels.BlogView]}
// @Failure 502 {object} apimodels.Response{data=result.Result[blogapimodels.BlogView]}
// @router /api/v1/blogs/{id} [get]
func (c *blogApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	res, err := bloghandler.Instance.Get(c.GetContext(ctx), id)
	return controllers.SendResult(ctx, res, err)
}
