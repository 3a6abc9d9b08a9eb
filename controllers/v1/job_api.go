package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"site-backend/config"
	"site-backend/controllers"
	pdfexport "site-backend/lib/export/pdf"
	xlsexport "site-backend/lib/export/xls"
	jobhandler "site-backend/lib/job"
	"site-backend/lib/resume"
	apimodels "site-backend/models/api"
	formsapimodels "site-backend/models/api/forms"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app *fiber.App) {
	controller := jobApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("export", controller.export)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("pdf", controller.pdf)
			idRoute.Post("apply", controller.apply)
		})
	})
}

// @Summary Список вакансий
// @Tags Вакансии
// @Description Страница списка вакансий с данными для пагинации
// @Param   page	query	int	false	"Страница (1,2,3..)"
// @Param   limit	query	int	false	"Записей на странице"
// @Success 200 {object} apimodels.Response{data=result.Result[jobapimodels.JobListView]}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response{data=result.Result[jobapimodels.JobListView]}
// @router /api/v1/jobs [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	page, limit, err := c.GetPagination(ctx, config.Conf.Pagination.JobPageSize, config.Conf.Pagination.MaxPageSize)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	res, err := jobhandler.Instance.List(c.GetContext(ctx), page, limit)
	return controllers.SendResult(ctx, res, err)
}

// @Summary Вакансия
// @Tags Вакансии
// @Description Вакансия. can_apply - принимает ли вакансия отклики
// @Param   id	path	string	true	"Идентификатор вакансии"
// @Success 200 {object} apimodels.Response{data=result.Result[jobapimodels.JobView]}
// @Failure 404 {object} apimodels.Response{data=result.Result[jobapimodels.JobView]}
// @Failure 502 {object} apimodels.Response{data=result.Result[jobapimodels.JobView]}
// @router /api/v1/jobs/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	res, err := jobhandler.Instance.Get(c.GetContext(ctx), id)
	return controllers.SendResult(ctx, res, err)
}

// @Summary Вакансия в pdf
// @Tags Вакансии
// @Description Описание вакансии в pdf
// @Param   id	path	string	true	"Идентификатор вакансии"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/jobs/{id}/pdf [get]
func (c *jobApiController) pdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	res, err := jobhandler.Instance.Get(c.GetContext(ctx), id)
	if err != nil {
		return controllers.SendResult(ctx, res, err)
	}
	body, err := pdfexport.GenerateJobDescription(*res.Data, config.Conf.Export.PdfFontDir)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("job_id", id), err, "Ошибка формирования pdf")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="job-%v.pdf"`, id))
	return ctx.Send(body)
}

// @Summary Открытые вакансии. Выгрузить в Excel
// @Tags Вакансии
// @Description Открытые вакансии. Выгрузить в Excel
// @Success 200
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/jobs/export [get]
func (c *jobApiController) export(ctx *fiber.Ctx) error {
	list, err := jobhandler.Instance.OpenJobs(c.GetContext(ctx))
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("Ошибка получения списка вакансий")
		return ctx.Status(fiber.StatusBadGateway).JSON(apimodels.NewError("Не удалось получить список вакансий"))
	}
	data, err := xlsexport.Instance.ExportJobList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки вакансий в Excel")
	}
	fileName := fmt.Sprintf("jobs-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Отклик на вакансию
// @Tags Вакансии
// @Description Отклик на вакансию. multipart/form-data с файлом resume или json с resume в виде data URL
// @Param   id	path	string	true	"Идентификатор вакансии"
// @Param	body body	formsapimodels.ApplicationPayload	true	"request body"
// @Success 200 {object} apimodels.Response{data=formsapimodels.FormState[formsapimodels.ApplicationPayload]}
// @Failure 400 {object} apimodels.Response{data=formsapimodels.FormState[formsapimodels.ApplicationPayload]}
// @Failure 404 {object} apimodels.Response{data=formsapimodels.FormState[formsapimodels.ApplicationPayload]}
// @Failure 409 {object} apimodels.Response{data=formsapimodels.FormState[formsapimodels.ApplicationPayload]}
// @Failure 502 {object} apimodels.Response{data=formsapimodels.FormState[formsapimodels.ApplicationPayload]}
// @router /api/v1/jobs/{id}/apply [post]
func (c *jobApiController) apply(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload formsapimodels.ApplicationPayload
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var file *resume.File
	if fh, fErr := ctx.FormFile("resume"); fErr == nil {
		file, err = resume.ReadFileHeader(fh, config.Conf.Forms.MaxResumeSize)
		if err != nil {
			state := formsapimodels.FormState[formsapimodels.ApplicationPayload]{
				Fields: payload,
				Error:  err.Error(),
			}
			return controllers.SendFormState(ctx, state, err)
		}
	}

	state, err := jobhandler.Instance.Apply(c.GetContext(ctx), id, payload, file)
	if errors.Is(err, jobhandler.ErrApplicationsClosed) {
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewErrorWithData(state.Error, state))
	}
	return controllers.SendFormState(ctx, state, err)
}
