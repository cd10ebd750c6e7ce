package serverutils

import (
	"net/http/httptest"
	"testing"

	"note-sharing-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())

	app.Get("/not-found", func(c *fiber.Ctx) error {
		return apperr.NotFound("note not found")
	})
	app.Get("/unauthorized", func(c *fiber.Ctx) error {
		return apperr.Unauthorized("workspace does not belong to caller company")
	})
	app.Get("/forbidden", func(c *fiber.Ctx) error {
		return apperr.Forbidden("note is not public")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return assert.AnError
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(SuccessResponse("done", fiber.Map{"id": 1}))
	})
	return app
}

func TestErrorHandlerMapsTypedErrors(t *testing.T) {
	app := newTestApp()

	cases := []struct {
		path   string
		status int
	}{
		{"/not-found", fiber.StatusNotFound},
		{"/unauthorized", fiber.StatusUnauthorized},
		{"/forbidden", fiber.StatusForbidden},
		{"/boom", fiber.StatusInternalServerError},
		{"/ok", fiber.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
