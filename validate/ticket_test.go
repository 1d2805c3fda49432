package validate

import (
	"net/http"
	"testing"

	"event_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTicketRejectsUnknownType(t *testing.T) {
	app := fiber.New()
	app.Post("/events/:eventId/tickets", CreateTicket("eventId"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	resp := testRequest(t, app, http.MethodPost, "/events/3/tickets",
		`{"ticketType":"platinum","price":50,"quantity":100}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateTicketRejectsNegativeNumbers(t *testing.T) {
	app := fiber.New()
	app.Post("/events/:eventId/tickets", CreateTicket("eventId"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	resp := testRequest(t, app, http.MethodPost, "/events/3/tickets",
		`{"ticketType":"vip","price":-5,"quantity":100}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateTicketStashesEventIdAndInput(t *testing.T) {
	var gotEventId uint
	var gotInput model.CreateTicketInput
	app := fiber.New()
	app.Post("/events/:eventId/tickets", CreateTicket("eventId"), func(c *fiber.Ctx) error {
		gotEventId = c.Locals("inputEventId").(uint)
		gotInput = c.Locals("inputCreateTicket").(model.CreateTicketInput)
		return c.SendStatus(fiber.StatusCreated)
	})

	resp := testRequest(t, app, http.MethodPost, "/events/3/tickets",
		`{"ticketType":"vip","price":80,"quantity":20}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, uint(3), gotEventId)
	assert.Equal(t, "vip", gotInput.TicketType)
	assert.Equal(t, 20, gotInput.Quantity)
}

func TestPurchaseTicketRejectsUnknownPaymentMethod(t *testing.T) {
	app := fiber.New()
	app.Post("/sold-tickets", PurchaseTicket(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	resp := testRequest(t, app, http.MethodPost, "/sold-tickets",
		`{"eventId":1,"attendeeId":2,"ticketType":"regular","paymentMethod":"Cash"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPurchaseTicketAcceptsKnownPaymentMethod(t *testing.T) {
	app := fiber.New()
	app.Post("/sold-tickets", PurchaseTicket(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	resp := testRequest(t, app, http.MethodPost, "/sold-tickets",
		`{"eventId":1,"attendeeId":2,"ticketType":"regular","paymentMethod":"ABA Pay"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreateEventPaymentRejectsMissingMethod(t *testing.T) {
	app := fiber.New()
	app.Post("/events/:eventId/payments", CreateEventPayment("eventId"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	resp := testRequest(t, app, http.MethodPost, "/events/3/payments", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
