package validate

import (
	"errors"
	"strconv"

	"event_manager/constants"
	"event_manager/model"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoleInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.RoleName == "" || input.DeptName == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, errors.New("roleName and deptName are required"))
		}
		if !utils.IsValidValueOfConstant(input.DeptName, constants.DeptNames) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid department name", nil, "deptName")
		}
		if input.MinSalary != nil && *input.MinSalary < 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.NEGATIVE_NUMER_REJECTED, nil, "minSalary")
		}
		if input.MaxSalary != nil && *input.MaxSalary < 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.NEGATIVE_NUMER_REJECTED, nil, "maxSalary")
		}
		if input.MinSalary != nil && input.MaxSalary != nil && *input.MaxSalary < *input.MinSalary {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "maxSalary must not be below minSalary", nil, "maxSalary")
		}

		c.Locals("inputCreateRole", input)
		return c.Next()
	}
}

func EditRole(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		param := c.Params(key)
		id, err := strconv.Atoi(param)
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditRoleInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		dropEmpty(&input.RoleName, &input.DeptName)

		if input.DeptName != nil && !utils.IsValidValueOfConstant(*input.DeptName, constants.DeptNames) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid department name", nil, "deptName")
		}
		if input.MinSalary != nil && *input.MinSalary < 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.NEGATIVE_NUMER_REJECTED, nil, "minSalary")
		}
		if input.MaxSalary != nil && *input.MaxSalary < 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.NEGATIVE_NUMER_REJECTED, nil, "maxSalary")
		}

		c.Locals("inputRoleId", uint(id))
		c.Locals("inputEditRole", input)
		return c.Next()
	}
}
