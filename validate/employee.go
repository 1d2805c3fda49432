package validate

import (
	"errors"
	"strconv"

	"event_manager/constants"
	"event_manager/model"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateEmployee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEmployeeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Phone == "" || input.RoleId == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, errors.New("missing required field"))
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if !utils.IsValidPhone(input.Phone) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_PHONE_FORMAT, nil, "phone")
		}
		if input.Gender != nil && *input.Gender != "" && !utils.IsValidValueOfConstant(*input.Gender, constants.Genders) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid gender value", nil, "gender")
		}
		if input.DOB != nil && *input.DOB != "" {
			if _, ok := utils.ParseDateField(*input.DOB); !ok {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid DOB, expected YYYY-MM-DD", nil, "dob")
			}
		}
		if input.Salary < 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.NEGATIVE_NUMER_REJECTED, nil, "salary")
		}

		c.Locals("inputCreateEmployee", input)
		return c.Next()
	}
}

func EditEmployee(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		param := c.Params(key)
		id, err := strconv.Atoi(param)
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditEmployeeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		dropEmpty(&input.FirstName, &input.LastName, &input.DOB, &input.Gender,
			&input.Email, &input.Phone)
		dropEmpty(&input.RoleId, &input.Salary)

		if input.Email != nil && !utils.IsValidEmail(*input.Email) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_EMAIL_FORMAT, nil, "email")
		}
		if input.Phone != nil && !utils.IsValidPhone(*input.Phone) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_PHONE_FORMAT, nil, "phone")
		}
		if input.Gender != nil && !utils.IsValidValueOfConstant(*input.Gender, constants.Genders) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid gender value", nil, "gender")
		}
		if input.DOB != nil {
			if _, ok := utils.ParseDateField(*input.DOB); !ok {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid DOB, expected YYYY-MM-DD", nil, "dob")
			}
		}
		if input.RoleId != nil {
			if _, ok := utils.ParseUintField(input.RoleId.String()); !ok {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil, "roleId")
			}
		}
		if input.Salary != nil {
			salary, ok := utils.ParseFloatField(input.Salary.String())
			if !ok || salary < 0 {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.NEGATIVE_NUMER_REJECTED, nil, "salary")
			}
		}

		c.Locals("inputEmployeeId", uint(id))
		c.Locals("inputEditEmployee", input)
		return c.Next()
	}
}
