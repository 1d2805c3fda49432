package validate

import (
	"errors"
	"strconv"

	"event_manager/constants"
	"event_manager/model"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateVenue() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateVenueInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.Name == "" || input.Location == "" || input.Email == "" || input.Phone == "" || input.MaxOccupancy == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, errors.New("missing required field"))
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if input.MaxOccupancy < 1 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "maxOccupancy must be at least 1", nil, "maxOccupancy")
		}
		if !utils.IsValidPhone(input.Phone) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_PHONE_FORMAT, nil, "phone")
		}

		c.Locals("inputCreateVenue", input)
		return c.Next()
	}
}

func EditVenue(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		param := c.Params(key)
		id, err := strconv.Atoi(param)
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditVenueInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		// Empty strings mean "leave unchanged"; drop them before re-validation.
		dropEmpty(&input.Name, &input.Location, &input.Email, &input.Phone)
		dropEmpty(&input.MaxOccupancy)

		if input.Email != nil && !utils.IsValidEmail(*input.Email) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_EMAIL_FORMAT, nil, "email")
		}
		if input.Phone != nil && !utils.IsValidPhone(*input.Phone) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_PHONE_FORMAT, nil, "phone")
		}
		if input.MaxOccupancy != nil {
			occ, ok := utils.ParseUintField(input.MaxOccupancy.String())
			if !ok || occ < 1 {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "maxOccupancy must be at least 1", nil, "maxOccupancy")
			}
		}

		c.Locals("inputVenueId", uint(id))
		c.Locals("inputEditVenue", input)
		return c.Next()
	}
}

// dropEmpty nils out string-kind pointers holding "".
func dropEmpty[T ~string](fields ...**T) {
	for _, f := range fields {
		if *f != nil && **f == "" {
			*f = nil
		}
	}
}
