package handler

import (
	"errors"

	"event_manager/constants"
	"event_manager/database"
	"event_manager/model"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var employeeSortFields = []string{"id", "first_name", "last_name", "salary"}

func GetEmployees(c *fiber.Ctx) error {
	filterInput := new(model.FilterEmployee)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Employee{})

	if filterInput.RoleId != 0 {
		condition = condition.Where("role_id = ?", filterInput.RoleId)
	}
	if filterInput.RoleName != "" {
		condition = condition.
			Joins("JOIN roles ON roles.id = employees.role_id").
			Where("roles.role_name = ?", filterInput.RoleName)
	}

	var totalCount int64
	if err := condition.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	order, err := buildOrder(filterInput.SortSpec, employeeSortFields, "employees.id ASC")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SORT_ORDER, err)
	}
	// qualify against the roles join
	if utils.IsValidValueOfConstant(filterInput.SortBy, employeeSortFields) {
		order = "employees." + order
	}

	limit, page, offset := utils.NormalizePagination(filterInput.Limit, filterInput.Page, filterInput.Offset)
	var employees []model.Employee
	if err := utils.ApplyPagination(condition, limit, offset).
		Order(order).
		Preload("Role").
		Find(&employees).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       employees,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

func CreateEmployee(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateEmployee").(model.CreateEmployeeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE EMPLOYEE INPUT TO LOCALS FAIL"))
	}

	db := database.DB

	var existing model.Employee
	if err := db.Where("email = ?", input.Email).Or("phone = ?", input.Phone).First(&existing).Error; err == nil {
		key := "email"
		if existing.Phone == input.Phone {
			key = "phone"
		}
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_KEY, nil, key)
	}

	var role model.Role
	if err := db.First(&role, input.RoleId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Referenced role does not exist", err, "roleId")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	newEmployee := model.Employee{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Gender:    input.Gender,
		Email:     input.Email,
		Phone:     input.Phone,
		RoleId:    input.RoleId,
		Salary:    input.Salary,
	}
	if input.DOB != nil && *input.DOB != "" {
		dob, _ := utils.ParseDateField(*input.DOB)
		newEmployee.DOB = &dob
	}

	if err := db.Create(&newEmployee).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newEmployee)
}

func EditEmployee(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditEmployee").(model.EditEmployeeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE EMPLOYEE INPUT TO LOCALS FAIL"))
	}
	employeeId, ok := c.Locals("inputEmployeeId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE EMPLOYEE ID TO LOCALS FAIL"))
	}

	db := database.DB
	tx := db.Begin()

	var employee model.Employee
	if err := tx.First(&employee, employeeId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updateData := map[string]interface{}{}
	if input.FirstName != nil {
		updateData["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updateData["last_name"] = *input.LastName
	}
	if input.DOB != nil {
		dob, _ := utils.ParseDateField(*input.DOB)
		updateData["dob"] = dob
	}
	if input.Gender != nil {
		updateData["gender"] = *input.Gender
	}
	if input.Email != nil {
		updateData["email"] = *input.Email
	}
	if input.Phone != nil {
		updateData["phone"] = *input.Phone
	}
	if input.RoleId != nil {
		roleId, _ := utils.ParseUintField(input.RoleId.String())
		updateData["role_id"] = roleId
	}
	if input.Salary != nil {
		salary, _ := utils.ParseFloatField(input.Salary.String())
		updateData["salary"] = salary
	}

	if len(updateData) > 0 {
		if err := tx.Model(&employee).Updates(updateData).Error; err != nil {
			tx.Rollback()
			return editFailureResponse(c, err)
		}
	}

	if err := tx.Preload("Role").First(&employee, employeeId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, employee)
}

func DeleteEmployee(c *fiber.Ctx) error {
	employeeId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE EMPLOYEE ID TO LOCALS FAIL"))
	}

	db := database.DB

	var employee model.Employee
	if err := db.First(&employee, employeeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tx := db.Begin()
	if err := tx.Where("emp_id = ?", employeeId).Delete(&model.EmployeeEvent{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if err := tx.Delete(&employee).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Employee deleted successfully"})
}
