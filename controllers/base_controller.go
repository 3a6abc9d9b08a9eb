package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	cmsapi "site-backend/lib/cms-api"
	formgateway "site-backend/lib/form-gateway"
	"site-backend/lib/listing"
	"site-backend/lib/result"
	"site-backend/lib/resume"
	apimodels "site-backend/models/api"
	formsapimodels "site-backend/models/api/forms"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("не указан идентификатор")
	}
	return id, nil
}

// GetPagination - page и limit из query. Явно переданные некорректные значения не подменяются,
// их отклоняет загрузка страницы
func (c *BaseAPIController) GetPagination(ctx *fiber.Ctx, defaultLimit, maxLimit int) (page, limit int, err error) {
	var p apimodels.Pagination
	if err = ctx.QueryParser(&p); err != nil {
		return 0, 0, errors.New("некорректные параметры страницы")
	}
	page, limit = p.GetPage(defaultLimit, maxLimit)
	if ctx.Query("page") != "" && p.Page < 1 {
		page = p.Page
	}
	if ctx.Query("limit") != "" && p.Limit < 1 {
		limit = p.Limit
	}
	return page, limit, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.WithField("path", ctx.Path())
	if requestID := ctx.GetRespHeader(fiber.HeaderXRequestID); requestID != "" {
		logger = logger.WithField("request_id", requestID)
	}
	return logger
}

// GetContext - контекст запроса для обращений во внешний API
func (c *BaseAPIController) GetContext(ctx *fiber.Ctx) context.Context {
	return cmsapi.GetContextWithRequestID(ctx.UserContext(), ctx.GetRespHeader(fiber.HeaderXRequestID))
}

func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}

// SendResult - состояние страницы сайта: 404 если запись не найдена, 502 если внешний API недоступен
func SendResult[T any](ctx *fiber.Ctx, res result.Result[T], err error) error {
	switch {
	case err == nil:
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(res))
	case listing.IsInvalidParams(err):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case res.IsNotFound():
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewErrorWithData(res.Error, res))
	}
	return ctx.Status(fiber.StatusBadGateway).JSON(apimodels.NewErrorWithData(res.Error, res))
}

// SendFormState - результат отправки формы. Поля формы возвращаются клиенту и при ошибке
func SendFormState[P any](ctx *fiber.Ctx, state formsapimodels.FormState[P], err error) error {
	switch {
	case err == nil:
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(state))
	case errors.Is(err, formgateway.ErrValidation), resume.IsInvalid(err):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithData(state.Error, state))
	case errors.Is(err, formgateway.ErrAlreadySubmitted):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewErrorWithData(state.Error, state))
	case cmsapi.IsNotFound(err):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewErrorWithData(state.Error, state))
	}
	return ctx.Status(fiber.StatusBadGateway).JSON(apimodels.NewErrorWithData(state.Error, state))
}
