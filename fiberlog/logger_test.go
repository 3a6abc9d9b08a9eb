package fiberlog

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger, hook := test.NewNullLogger()
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(New(Config{
		Logger: logger,
		Tags:   []string{TagStatus, TagMethod, TagPath, TagBody, RequestID},
	}))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Post("/fail", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadGateway).SendString("fail")
	})

	t.Run(`info on success check`, func(t *testing.T) {
		hook.Reset()
		resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.InfoLevel, entry.Level)
		require.Equal(t, "GET", entry.Data[TagMethod])
		require.Equal(t, "/ok", entry.Data[TagPath])
		require.NotEmpty(t, entry.Data[RequestID])
	})

	t.Run(`error level on 5xx check`, func(t *testing.T) {
		hook.Reset()
		req := httptest.NewRequest("POST", "/fail", strings.NewReader(`{"name":"Ann"}`))
		req.Header.Set("Content-Type", "application/json")
		_, err := app.Test(req)
		require.Nil(t, err)
		entry := hook.LastEntry()
		require.Equal(t, logrus.ErrorLevel, entry.Level)
		require.Equal(t, `{"name":"Ann"}`, entry.Data[TagBody])
	})

	t.Run(`options not logged check`, func(t *testing.T) {
		hook.Reset()
		_, err := app.Test(httptest.NewRequest("OPTIONS", "/ok", nil))
		require.Nil(t, err)
		require.Nil(t, hook.LastEntry())
	})
}
