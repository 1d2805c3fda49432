package validate

import (
	"net/http"
	"testing"

	"event_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMissingFields(t *testing.T) {
	app := fiber.New()
	app.Post("/register", Register(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	resp := testRequest(t, app, http.MethodPost, "/register", `{"username":"dara"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	app := fiber.New()
	app.Post("/register", Register(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	resp := testRequest(t, app, http.MethodPost, "/register",
		`{"username":"dara","email":"not-an-email","password":"secret1"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	app := fiber.New()
	app.Post("/register", Register(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	resp := testRequest(t, app, http.MethodPost, "/register",
		`{"username":"dara","email":"dara@example.com","password":"abc"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterStashesInput(t *testing.T) {
	var got model.RegisterUserInput
	app := fiber.New()
	app.Post("/register", Register(), func(c *fiber.Ctx) error {
		got = c.Locals("inputRegister").(model.RegisterUserInput)
		return c.SendStatus(fiber.StatusCreated)
	})

	resp := testRequest(t, app, http.MethodPost, "/register",
		`{"username":"dara","email":"dara@example.com","password":"secret1"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "dara@example.com", got.Email)
	assert.Equal(t, "dara", got.Username)
}

func TestLoginMissingFields(t *testing.T) {
	app := fiber.New()
	app.Post("/login", Login(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := testRequest(t, app, http.MethodPost, "/login", `{"email":"dara@example.com"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
