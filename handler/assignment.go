package handler

import (
	"errors"
	"strconv"

	"event_manager/constants"
	"event_manager/database"
	"event_manager/model"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func parseIdParam(c *fiber.Ctx, key string) (uint, error) {
	id, err := strconv.Atoi(c.Params(key))
	if err != nil || id <= 0 {
		return 0, errors.New("params invalid")
	}
	return uint(id), nil
}

// AssignEmployee puts an employee on the event's working team.
func AssignEmployee(c *fiber.Ctx) error {
	eventId, err := parseIdParam(c, "eventId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	empId, err := parseIdParam(c, "empId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	db := database.DB
	for field, check := range map[string]error{
		"eventId": db.First(&model.Event{}, eventId).Error,
		"empId":   db.First(&model.Employee{}, empId).Error,
	} {
		if check != nil {
			if errors.Is(check, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, check, field)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, check)
		}
	}

	var existing model.EmployeeEvent
	err = db.Where("emp_id = ? AND event_id = ?", empId, eventId).First(&existing).Error
	if err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_KEY, nil, "empId")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	assignment := model.EmployeeEvent{EmpId: empId, EventId: eventId}
	if err := db.Create(&assignment).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, assignment)
}

func UnassignEmployee(c *fiber.Ctx) error {
	eventId, err := parseIdParam(c, "eventId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	empId, err := parseIdParam(c, "empId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	result := database.DB.Where("emp_id = ? AND event_id = ?", empId, eventId).Delete(&model.EmployeeEvent{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, errors.New("assignment does not exist"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Employee unassigned"})
}

type bookCateringInput struct {
	CateringId uint `json:"cateringId" form:"cateringId"`
	NumOfSet   int  `json:"numOfSet" form:"numOfSet"`
}

// BookCatering attaches a catering set to the event; numOfSet defaults to 1.
func BookCatering(c *fiber.Ctx) error {
	eventId, err := parseIdParam(c, "eventId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var input bookCateringInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if input.CateringId == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, errors.New("cateringId is required"))
	}
	if input.NumOfSet < 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.NEGATIVE_NUMER_REJECTED, nil, "numOfSet")
	}
	if input.NumOfSet == 0 {
		input.NumOfSet = 1
	}

	db := database.DB
	for field, check := range map[string]error{
		"eventId":    db.First(&model.Event{}, eventId).Error,
		"cateringId": db.First(&model.Catering{}, input.CateringId).Error,
	} {
		if check != nil {
			if errors.Is(check, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, check, field)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, check)
		}
	}

	booking := model.EventCatering{EventId: eventId, CateringId: input.CateringId, NumOfSet: input.NumOfSet}
	err = db.Where("event_id = ? AND catering_id = ?", eventId, input.CateringId).
		Assign(model.EventCatering{NumOfSet: input.NumOfSet}).
		FirstOrCreate(&booking).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

func CancelCatering(c *fiber.Ctx) error {
	eventId, err := parseIdParam(c, "eventId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	cateringId, err := parseIdParam(c, "cateringId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	result := database.DB.Where("event_id = ? AND catering_id = ?", eventId, cateringId).Delete(&model.EventCatering{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, errors.New("booking does not exist"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Catering booking removed"})
}
