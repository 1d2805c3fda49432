package validate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"event_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestFilterEventsRejectsUnknownStatus(t *testing.T) {
	app := fiber.New()
	app.Get("/events", FilterEvents(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := testRequest(t, app, http.MethodGet, "/events?status=archived", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFilterEventsRejectsUnknownEventType(t *testing.T) {
	app := fiber.New()
	app.Get("/events", FilterEvents(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := testRequest(t, app, http.MethodGet, "/events?eventType=Rave", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFilterEventsStashesParsedFilter(t *testing.T) {
	var got model.FilterEvent
	app := fiber.New()
	app.Get("/events", FilterEvents(), func(c *fiber.Ctx) error {
		got = c.Locals("inputFilterEvent").(model.FilterEvent)
		return c.SendStatus(fiber.StatusOK)
	})

	resp := testRequest(t, app, http.MethodGet,
		"/events?status=pending&eventType=Concert&custId=4&limit=5&sortBy=budget&sortOrder=DESC&include=true", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "pending", got.Status)
	assert.Equal(t, "Concert", got.EventType)
	assert.Equal(t, uint(4), got.CustId)
	assert.Equal(t, 5, *got.Limit)
	assert.Equal(t, "budget", got.SortBy)
	assert.Equal(t, "DESC", got.SortOrder)
	assert.True(t, got.Include)
}

func TestCreateEventMissingFields(t *testing.T) {
	app := fiber.New()
	app.Post("/events", CreateEvent(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	resp := testRequest(t, app, http.MethodPost, "/events",
		`{"name":"Gala","startDate":"2026-05-01"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateEventRejectsInvertedDates(t *testing.T) {
	app := fiber.New()
	app.Post("/events", CreateEvent(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	resp := testRequest(t, app, http.MethodPost, "/events",
		`{"name":"Gala","startDate":"2026-05-02","endDate":"2026-05-01","budget":100,"eventTypeId":1,"venueId":1,"custId":1}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateEventStashesInputAndDates(t *testing.T) {
	var got model.CreateEventInput
	app := fiber.New()
	app.Post("/events", CreateEvent(), func(c *fiber.Ctx) error {
		got = c.Locals("inputCreateEvent").(model.CreateEventInput)
		return c.SendStatus(fiber.StatusCreated)
	})

	resp := testRequest(t, app, http.MethodPost, "/events",
		`{"name":"Gala","startDate":"2026-05-01","endDate":"2026-05-02","budget":2500,"eventTypeId":1,"venueId":2,"custId":3}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	assert.Equal(t, "Gala", got.Name)
	assert.Equal(t, 2500.0, got.Budget)
	assert.Equal(t, uint(2), got.VenueId)
}

func TestEditEventRejectsBadIdParam(t *testing.T) {
	app := fiber.New()
	app.Put("/events/:eventId", EditEvent("eventId"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := testRequest(t, app, http.MethodPut, "/events/abc", `{"name":"New name"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestEditEventDropsEmptyStrings(t *testing.T) {
	var got model.EditEventInput
	app := fiber.New()
	app.Put("/events/:eventId", EditEvent("eventId"), func(c *fiber.Ctx) error {
		got = c.Locals("inputEditEvent").(model.EditEventInput)
		return c.SendStatus(fiber.StatusOK)
	})

	resp := testRequest(t, app, http.MethodPut, "/events/7",
		`{"name":"","budget":"3000","status":""}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// empty strings mean "no change", not "set to empty"
	assert.Nil(t, got.Name)
	assert.Nil(t, got.Status)
	require.NotNil(t, got.Budget)
	assert.Equal(t, "3000", got.Budget.String())
}

func TestEditEventAcceptsNumericJSONFields(t *testing.T) {
	var got model.EditEventInput
	app := fiber.New()
	app.Put("/events/:eventId", EditEvent("eventId"), func(c *fiber.Ctx) error {
		got = c.Locals("inputEditEvent").(model.EditEventInput)
		return c.SendStatus(fiber.StatusOK)
	})

	// budget and the FK ids may arrive as JSON numbers instead of strings
	resp := testRequest(t, app, http.MethodPut, "/events/7",
		`{"budget":3000,"eventTypeId":2,"custId":"5"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, got.Budget)
	assert.Equal(t, "3000", got.Budget.String())
	require.NotNil(t, got.EventTypeId)
	assert.Equal(t, "2", got.EventTypeId.String())
	require.NotNil(t, got.CustId)
	assert.Equal(t, "5", got.CustId.String())
	assert.Nil(t, got.VenueId)
}

func TestEditEventRejectsUnknownStatus(t *testing.T) {
	app := fiber.New()
	app.Put("/events/:eventId", EditEvent("eventId"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := testRequest(t, app, http.MethodPut, "/events/7", `{"status":"archived"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestEditEventRejectsNonNumericBudget(t *testing.T) {
	app := fiber.New()
	app.Put("/events/:eventId", EditEvent("eventId"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := testRequest(t, app, http.MethodPut, "/events/7", `{"budget":"lots"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
