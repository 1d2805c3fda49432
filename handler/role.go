package handler

import (
	"errors"
	"fmt"

	"event_manager/constants"
	"event_manager/database"
	"event_manager/model"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetRoles(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Role{})

	var totalCount int64
	if err := condition.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	limit, page, offset := utils.NormalizePagination(pagination.Limit, pagination.Page, pagination.Offset)
	var roles []model.Role
	if err := utils.ApplyPagination(condition, limit, offset).Order("id ASC").Find(&roles).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       roles,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

func GetRoleById(c *fiber.Ctx) error {
	roleId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE ROLE ID TO LOCALS FAIL"))
	}

	var role model.Role
	if err := database.DB.First(&role, roleId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, role)
}

func CreateRole(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateRole").(model.CreateRoleInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE ROLE INPUT TO LOCALS FAIL"))
	}

	newRole := new(model.Role)
	copier.Copy(&newRole, input)
	if err := database.DB.Create(&newRole).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newRole)
}

func EditRole(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditRole").(model.EditRoleInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE ROLE INPUT TO LOCALS FAIL"))
	}
	roleId, ok := c.Locals("inputRoleId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE ROLE ID TO LOCALS FAIL"))
	}

	db := database.DB
	tx := db.Begin()

	var role model.Role
	if err := tx.First(&role, roleId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updateData := map[string]interface{}{}
	if input.RoleName != nil {
		updateData["role_name"] = *input.RoleName
	}
	if input.DeptName != nil {
		updateData["dept_name"] = *input.DeptName
	}
	if input.MinSalary != nil {
		updateData["min_salary"] = *input.MinSalary
	}
	if input.MaxSalary != nil {
		updateData["max_salary"] = *input.MaxSalary
	}

	if len(updateData) > 0 {
		if err := tx.Model(&role).Updates(updateData).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
	}

	if err := tx.First(&role, roleId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, role)
}

func DeleteRole(c *fiber.Ctx) error {
	roleId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE ROLE ID TO LOCALS FAIL"))
	}

	db := database.DB

	var role model.Role
	if err := db.First(&role, roleId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var dependentCount int64
	db.Model(&model.Employee{}).Where("role_id = ?", roleId).Count(&dependentCount)
	if dependentCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Cannot delete: role is assigned to existing employees",
			fmt.Errorf("role %d is assigned to %d employee(s)", roleId, dependentCount))
	}

	if err := db.Delete(&role).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Role deleted"})
}
