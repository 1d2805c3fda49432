package validate

import (
	"net/http"
	"testing"

	"event_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVenueMissingFields(t *testing.T) {
	app := fiber.New()
	app.Post("/venues", CreateVenue(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	resp := testRequest(t, app, http.MethodPost, "/venues", `{"name":"Grand Hall"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateVenueRejectsBadPhone(t *testing.T) {
	app := fiber.New()
	app.Post("/venues", CreateVenue(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	resp := testRequest(t, app, http.MethodPost, "/venues",
		`{"name":"Grand Hall","location":"Phnom Penh","email":"hall@example.com","phone":"nope","maxOccupancy":300}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestEditVenueDropsEmptyAndCoerces(t *testing.T) {
	var got model.EditVenueInput
	app := fiber.New()
	app.Put("/venues/:venueId", EditVenue("venueId"), func(c *fiber.Ctx) error {
		got = c.Locals("inputEditVenue").(model.EditVenueInput)
		return c.SendStatus(fiber.StatusOK)
	})

	resp := testRequest(t, app, http.MethodPut, "/venues/4",
		`{"name":"","maxOccupancy":"450","phone":""}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Nil(t, got.Name)
	assert.Nil(t, got.Phone)
	require.NotNil(t, got.MaxOccupancy)
	assert.Equal(t, "450", got.MaxOccupancy.String())
}

func TestEditVenueAcceptsNumericOccupancy(t *testing.T) {
	var got model.EditVenueInput
	app := fiber.New()
	app.Put("/venues/:venueId", EditVenue("venueId"), func(c *fiber.Ctx) error {
		got = c.Locals("inputEditVenue").(model.EditVenueInput)
		return c.SendStatus(fiber.StatusOK)
	})

	resp := testRequest(t, app, http.MethodPut, "/venues/4", `{"maxOccupancy":450}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, got.MaxOccupancy)
	assert.Equal(t, "450", got.MaxOccupancy.String())
}

func TestEditVenueRejectsNonNumericOccupancy(t *testing.T) {
	app := fiber.New()
	app.Put("/venues/:venueId", EditVenue("venueId"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := testRequest(t, app, http.MethodPut, "/venues/4", `{"maxOccupancy":"many"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetByIdParamGuard(t *testing.T) {
	app := fiber.New()
	app.Delete("/venues/:venueId", GetById("venueId"), func(c *fiber.Ctx) error {
		id := c.Locals("inputId").(uint)
		assert.Equal(t, uint(9), id)
		return c.SendStatus(fiber.StatusOK)
	})

	resp := testRequest(t, app, http.MethodDelete, "/venues/9", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = testRequest(t, app, http.MethodDelete, "/venues/zero", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
