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

func GetCustomers(c *fiber.Ctx) error {
	filterInput := new(model.FilterCustomer)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Customer{})

	if filterInput.CustId != 0 {
		condition = condition.Where("id = ?", filterInput.CustId)
	}
	if filterInput.UserId != 0 {
		condition = condition.Where("user_id = ?", filterInput.UserId)
	}

	var totalCount int64
	if err := condition.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	limit, page, offset := utils.NormalizePagination(filterInput.Limit, filterInput.Page, filterInput.Offset)
	var customers []model.Customer
	if err := utils.ApplyPagination(condition, limit, offset).Order("id ASC").Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       customers,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

func CreateCustomer(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateCustomer").(model.CreateCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE CUSTOMER INPUT TO LOCALS FAIL"))
	}

	db := database.DB

	var user model.User
	if err := db.First(&user, input.UserId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Referenced user does not exist", err, "userId")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	newCustomer := new(model.Customer)
	copier.Copy(&newCustomer, input)
	if err := db.Create(&newCustomer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newCustomer)
}

func EditCustomer(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditCustomer").(model.EditCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE CUSTOMER INPUT TO LOCALS FAIL"))
	}
	customerId, ok := c.Locals("inputCustomerId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE CUSTOMER ID TO LOCALS FAIL"))
	}

	db := database.DB
	tx := db.Begin()

	var customer model.Customer
	if err := tx.First(&customer, customerId).Error; err != nil {
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
	if input.OrganizationName != nil {
		updateData["organization_name"] = *input.OrganizationName
	}
	if input.PhoneNumber != nil {
		updateData["phone_number"] = *input.PhoneNumber
	}
	if input.UserId != nil {
		updateData["user_id"] = *input.UserId
	}

	if len(updateData) > 0 {
		if err := tx.Model(&customer).Updates(updateData).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
	}

	if err := tx.First(&customer, customerId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func DeleteCustomer(c *fiber.Ctx) error {
	customerId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE CUSTOMER ID TO LOCALS FAIL"))
	}

	db := database.DB

	var customer model.Customer
	if err := db.First(&customer, customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var dependentCount int64
	db.Model(&model.Event{}).Where("cust_id = ?", customerId).Count(&dependentCount)
	if dependentCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.DELETE_CONFLICT,
			fmt.Errorf("customer %d is linked to %d event(s)", customerId, dependentCount))
	}

	if err := db.Delete(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Customer deleted successfully"})
}

func GetAttendees(c *fiber.Ctx) error {
	filterInput := new(model.FilterAttendee)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Attendee{})
	if filterInput.UserId != 0 {
		condition = condition.Where("user_id = ?", filterInput.UserId)
	}

	var totalCount int64
	if err := condition.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	limit, page, offset := utils.NormalizePagination(filterInput.Limit, filterInput.Page, filterInput.Offset)
	var attendees []model.Attendee
	if err := utils.ApplyPagination(condition, limit, offset).Order("id ASC").Find(&attendees).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       attendees,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

func CreateAttendee(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateAttendee").(model.CreateAttendeeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE ATTENDEE INPUT TO LOCALS FAIL"))
	}

	db := database.DB

	var user model.User
	if err := db.First(&user, input.UserId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Referenced user does not exist", err, "userId")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	newAttendee := new(model.Attendee)
	copier.Copy(&newAttendee, input)
	if err := db.Create(&newAttendee).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newAttendee)
}

func EditAttendee(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditAttendee").(model.EditAttendeeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE ATTENDEE INPUT TO LOCALS FAIL"))
	}
	attendeeId, ok := c.Locals("inputAttendeeId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE ATTENDEE ID TO LOCALS FAIL"))
	}

	db := database.DB
	tx := db.Begin()

	var attendee model.Attendee
	if err := tx.First(&attendee, attendeeId).Error; err != nil {
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
	if input.Gender != nil {
		updateData["gender"] = *input.Gender
	}
	if input.PhoneNumber != nil {
		updateData["phone_number"] = *input.PhoneNumber
	}

	if len(updateData) > 0 {
		if err := tx.Model(&attendee).Updates(updateData).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
	}

	if err := tx.First(&attendee, attendeeId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, attendee)
}

func DeleteAttendee(c *fiber.Ctx) error {
	attendeeId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE ATTENDEE ID TO LOCALS FAIL"))
	}

	db := database.DB

	var attendee model.Attendee
	if err := db.First(&attendee, attendeeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&attendee).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Attendee deleted successfully"})
}
