package validate

import (
	"errors"
	"strconv"

	"event_manager/constants"
	"event_manager/model"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCustomerInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.FirstName == "" || input.LastName == "" || input.UserId == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, errors.New("missing required field"))
		}
		if input.PhoneNumber != nil && *input.PhoneNumber != "" && !utils.IsValidPhone(*input.PhoneNumber) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_PHONE_FORMAT, nil, "phoneNumber")
		}

		c.Locals("inputCreateCustomer", input)
		return c.Next()
	}
}

func EditCustomer(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		param := c.Params(key)
		id, err := strconv.Atoi(param)
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditCustomerInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		dropEmpty(&input.FirstName, &input.LastName, &input.OrganizationName, &input.PhoneNumber)

		if input.PhoneNumber != nil && !utils.IsValidPhone(*input.PhoneNumber) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_PHONE_FORMAT, nil, "phoneNumber")
		}

		c.Locals("inputCustomerId", uint(id))
		c.Locals("inputEditCustomer", input)
		return c.Next()
	}
}

func CreateAttendee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAttendeeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.FirstName == "" || input.LastName == "" || input.UserId == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, errors.New("missing required field"))
		}
		if input.Gender != nil && *input.Gender != "" && !utils.IsValidValueOfConstant(*input.Gender, constants.Genders) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid gender value", nil, "gender")
		}
		if input.PhoneNumber != nil && *input.PhoneNumber != "" && !utils.IsValidPhone(*input.PhoneNumber) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_PHONE_FORMAT, nil, "phoneNumber")
		}

		c.Locals("inputCreateAttendee", input)
		return c.Next()
	}
}

func EditAttendee(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		param := c.Params(key)
		id, err := strconv.Atoi(param)
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditAttendeeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		dropEmpty(&input.FirstName, &input.LastName, &input.Gender, &input.PhoneNumber)

		if input.Gender != nil && !utils.IsValidValueOfConstant(*input.Gender, constants.Genders) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid gender value", nil, "gender")
		}
		if input.PhoneNumber != nil && !utils.IsValidPhone(*input.PhoneNumber) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_PHONE_FORMAT, nil, "phoneNumber")
		}

		c.Locals("inputAttendeeId", uint(id))
		c.Locals("inputEditAttendee", input)
		return c.Next()
	}
}
