package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	botnotify "site-backend/lib/utils/bot-notify"
)

// ErrNotify - уведомление о 5xx ответах. Пустой addr - уведомления отключены
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if addr == "" {
			return err
		}
		statusCode := c.Response().StatusCode()
		if statusCode < http.StatusInternalServerError {
			return err
		}

		var data struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		body := c.Response().Body()
		if unmErr := json.Unmarshal(body, &data); unmErr != nil {
			log.WithError(unmErr).Debug("ответ не в формате json")
		}
		msg := data.Message
		if msg == "" {
			msg = string(body)
		}

		method := c.Method()
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		requestID := c.GetRespHeader(fiber.HeaderXRequestID)

		go botnotify.SendError(addr, botnotify.ErrorEvent{
			Code:      statusCode,
			Method:    method,
			Path:      path,
			RequestID: requestID,
			Error:     msg,
		}, log.WithField("request_id", requestID))
		return err
	}
}
