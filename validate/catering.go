package validate

import (
	"errors"
	"strconv"

	"event_manager/constants"
	"event_manager/model"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCatering() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCateringInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.CateringSet == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, errors.New("cateringSet is required"))
		}
		if input.Price < 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.NEGATIVE_NUMER_REJECTED, nil, "price")
		}

		c.Locals("inputCreateCatering", input)
		return c.Next()
	}
}

func EditCatering(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		param := c.Params(key)
		id, err := strconv.Atoi(param)
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditCateringInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		dropEmpty(&input.CateringSet)
		dropEmpty(&input.Price)

		if input.Price != nil {
			price, ok := utils.ParseFloatField(input.Price.String())
			if !ok || price < 0 {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.NEGATIVE_NUMER_REJECTED, nil, "price")
			}
		}

		c.Locals("inputCateringId", uint(id))
		c.Locals("inputEditCatering", input)
		return c.Next()
	}
}
