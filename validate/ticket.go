package validate

import (
	"errors"
	"strconv"

	"event_manager/constants"
	"event_manager/model"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateTicket(eventKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		param := c.Params(eventKey)
		id, err := strconv.Atoi(param)
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.CreateTicketInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.TicketType == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, errors.New("ticketType is required"))
		}
		if !utils.IsValidValueOfConstant(input.TicketType, constants.TicketTypes) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid ticket type", nil, "ticketType")
		}
		if input.Price < 0 || input.Quantity < 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NEGATIVE_NUMER_REJECTED, errors.New("price and quantity must be non-negative"))
		}

		c.Locals("inputEventId", uint(id))
		c.Locals("inputCreateTicket", input)
		return c.Next()
	}
}

func PurchaseTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PurchaseTicketInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.EventId == 0 || input.AttendeeId == 0 || input.TicketType == "" || input.PaymentMethod == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, errors.New("missing required field"))
		}
		if !utils.IsValidValueOfConstant(input.TicketType, constants.TicketTypes) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid ticket type", nil, "ticketType")
		}
		if !utils.IsValidValueOfConstant(input.PaymentMethod, constants.PaymentMethods) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid payment method", nil, "paymentMethod")
		}

		c.Locals("inputPurchaseTicket", input)
		return c.Next()
	}
}

func CreateEventPayment(eventKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		param := c.Params(eventKey)
		id, err := strconv.Atoi(param)
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.CreateEventPaymentInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.PaymentMethod == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, errors.New("paymentMethod is required"))
		}
		if !utils.IsValidValueOfConstant(input.PaymentMethod, constants.PaymentMethods) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid payment method", nil, "paymentMethod")
		}

		c.Locals("inputEventId", uint(id))
		c.Locals("inputCreatePayment", input)
		return c.Next()
	}
}
