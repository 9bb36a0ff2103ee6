package serverutils

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, body io.Reader) Response[json.RawMessage] {
	t.Helper()
	var out Response[json.RawMessage]
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/app", func(*fiber.Ctx) error {
		return NewAppError(fiber.StatusUnsupportedMediaType, "wrong type", errors.New("cause"))
	})
	app.Get("/wrapped", func(*fiber.Ctx) error {
		return errors.Join(errors.New("ctx"), NewAppError(fiber.StatusNotFound, "gone", nil))
	})
	app.Get("/boom", func(*fiber.Ctx) error { return errors.New("db down") })

	tests := []struct {
		path    string
		code    int
		message string
	}{
		{"/app", 415, "wrong type"},
		{"/wrapped", 404, "gone"},
		{"/boom", 500, "Internal server error"},
		{"/missing", 404, "Cannot GET /missing"},
	}

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tt.code, resp.StatusCode, tt.path)

		env := decodeEnvelope(t, resp.Body)
		assert.False(t, env.Success)
		assert.Equal(t, tt.code, env.Code)
		assert.Equal(t, tt.message, env.Message)
	}
}

func TestValidateRequest(t *testing.T) {
	type req struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required"`
	}

	err := ValidateRequest(req{Email: "nope", Password: "x"})
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "email must be a valid email address", appErr.Message)

	err = ValidateRequest(req{Email: "a@b.co"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "password is required", appErr.Message)

	assert.NoError(t, ValidateRequest(req{Email: "a@b.co", Password: "x"}))
}

func TestDeviceMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(DeviceMiddleware(false))
	app.Get("/", func(ctx *fiber.Ctx) error { return ctx.SendString(DeviceID(ctx)) })

	const known = "8d1f6a4e-3f7b-4b41-9f4f-6f3c9a5e1d20"

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(DeviceHeaderName, known)
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, known, string(body))
	assert.Empty(t, resp.Cookies())

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	require.Len(t, resp.Cookies(), 1)
	assert.Equal(t, DeviceCookieName, resp.Cookies()[0].Name)
	assert.Equal(t, string(body), resp.Cookies()[0].Value)

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set(DeviceHeaderName, "../../etc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.NotEqual(t, "../../etc", string(body))
}

type stubVerifier bool

func (s stubVerifier) IsAuthenticated(context.Context, string) (bool, error) {
	return bool(s), nil
}

func TestSessionMiddleware(t *testing.T) {
	build := func(v SessionVerifier, guard bool) *fiber.App {
		app := fiber.New()
		app.Use(ErrorHandlerMiddleware(), DeviceMiddleware(false))
		app.Get("/", SessionMiddleware(v, guard), func(ctx *fiber.Ctx) error { return ctx.SendStatus(204) })
		return app
	}

	resp, err := build(stubVerifier(false), true).Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	resp, err = build(stubVerifier(true), true).Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)

	resp, err = build(stubVerifier(false), false).Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}
