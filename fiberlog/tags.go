package fiberlog

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"site-backend/lib/utils/helpers"
)

const (
	TagPid               = "pid"
	TagLatency           = "latency_ms"
	TagStatus            = "status"
	TagMethod            = "method"
	TagPath              = "path"
	TagRoute             = "route"
	TagURL               = "url"
	TagIP                = "ip"
	TagUA                = "user_agent"
	TagQueryStringParams = "query"
	TagBody              = "body"
	TagResBody           = "res_body"
	TagError             = "error"
	RequestID            = "request_id"
)

const maxLoggedBodyLen = 1000

// data - данные одного запроса
type data struct {
	pid   int
	start time.Time
	end   time.Time
	err   error
}

// FuncTag - значение поля лога для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(c *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(c *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).Milliseconds()
		},
		TagStatus: func(c *fiber.Ctx, d *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, d *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, d *data) interface{} {
			return c.Path()
		},
		TagRoute: func(c *fiber.Ctx, d *data) interface{} {
			if r := c.Route(); r != nil {
				return r.Path
			}
			return ""
		},
		TagURL: func(c *fiber.Ctx, d *data) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, d *data) interface{} {
			return c.IP()
		},
		TagUA: func(c *fiber.Ctx, d *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagQueryStringParams: func(c *fiber.Ctx, d *data) interface{} {
			return string(c.Request().URI().QueryString())
		},
		TagBody: func(c *fiber.Ctx, d *data) interface{} {
			// файлы резюме в лог не пишем
			if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
				return ""
			}
			return helpers.Truncate(string(c.Body()), maxLoggedBodyLen)
		},
		TagResBody: func(c *fiber.Ctx, d *data) interface{} {
			if !strings.HasPrefix(string(c.Response().Header.ContentType()), fiber.MIMEApplicationJSON) {
				return ""
			}
			return helpers.Truncate(string(c.Response().Body()), maxLoggedBodyLen)
		},
		TagError: func(c *fiber.Ctx, d *data) interface{} {
			if d.err != nil {
				return d.err.Error()
			}
			return ""
		},
		RequestID: func(c *fiber.Ctx, d *data) interface{} {
			return c.GetRespHeader(fiber.HeaderXRequestID)
		},
	}
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}
