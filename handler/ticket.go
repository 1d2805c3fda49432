package handler

import (
	"errors"
	"fmt"
	"time"

	"event_manager/constants"
	"event_manager/database"
	"event_manager/model"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetEventTickets(c *fiber.Ctx) error {
	eventId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE EVENT ID TO LOCALS FAIL"))
	}

	db := database.DB
	if err := db.First(&model.Event{}, eventId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var tickets []model.Ticket
	if err := db.Where("event_id = ?", eventId).Order("ticket_type ASC").Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tickets)
}

func CreateTicket(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateTicket").(model.CreateTicketInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE TICKET INPUT TO LOCALS FAIL"))
	}
	eventId, ok := c.Locals("inputEventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE EVENT ID TO LOCALS FAIL"))
	}

	db := database.DB
	if err := db.First(&model.Event{}, eventId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var existing model.Ticket
	err := db.Where("event_id = ? AND ticket_type = ?", eventId, input.TicketType).First(&existing).Error
	if err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_KEY, nil, "ticketType")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	newTicket := model.Ticket{
		EventId:    eventId,
		TicketType: input.TicketType,
		Price:      input.Price,
		Quantity:   input.Quantity,
	}
	if err := db.Create(&newTicket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newTicket)
}

// PurchaseTicket decrements inventory and records the sale in one transaction
// so two concurrent purchases cannot both take the last ticket.
func PurchaseTicket(c *fiber.Ctx) error {
	input, ok := c.Locals("inputPurchaseTicket").(model.PurchaseTicketInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE PURCHASE INPUT TO LOCALS FAIL"))
	}

	db := database.DB

	if err := db.First(&model.Attendee{}, input.AttendeeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Referenced record does not exist", err, "attendeeId")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tx := db.Begin()

	var ticket model.Ticket
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("event_id = ? AND ticket_type = ?", input.EventId, input.TicketType).
		First(&ticket).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if ticket.Quantity <= 0 {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TICKET_SOLD_OUT, errors.New("no tickets left"))
	}

	if err := tx.Model(&ticket).Update("quantity", ticket.Quantity-1).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	soldTicket := model.SoldTicket{
		EventId:       input.EventId,
		AttendeeId:    input.AttendeeId,
		TicketType:    input.TicketType,
		PurchaseDate:  time.Now(),
		PaymentMethod: input.PaymentMethod,
	}
	if err := tx.Create(&soldTicket).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusCreated, soldTicket)
}

func GetSoldTickets(c *fiber.Ctx) error {
	filterInput := new(model.FilterSoldTicket)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.SoldTicket{})
	if filterInput.EventId != 0 {
		condition = condition.Where("event_id = ?", filterInput.EventId)
	}
	if filterInput.AttendeeId != 0 {
		condition = condition.Where("attendee_id = ?", filterInput.AttendeeId)
	}

	var totalCount int64
	if err := condition.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	limit, page, offset := utils.NormalizePagination(filterInput.Limit, filterInput.Page, filterInput.Offset)
	var soldTickets []model.SoldTicket
	err := utils.ApplyPagination(condition, limit, offset).
		Order("purchase_date DESC").
		Preload("Attendee").
		Find(&soldTickets).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       soldTickets,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

// GetSoldTicketQR renders the sold ticket as a PNG QR code for entry checks.
func GetSoldTicketQR(c *fiber.Ctx) error {
	soldTicketId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE SOLD TICKET ID TO LOCALS FAIL"))
	}

	var soldTicket model.SoldTicket
	if err := database.DB.First(&soldTicket, soldTicketId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	content := fmt.Sprintf("sold-ticket:%d|event:%d|attendee:%d|type:%s",
		soldTicket.ID, soldTicket.EventId, soldTicket.AttendeeId, soldTicket.TicketType)
	png, err := utils.GenerateQRCode(content, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func GetEventPayments(c *fiber.Ctx) error {
	eventId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE EVENT ID TO LOCALS FAIL"))
	}

	db := database.DB
	if err := db.First(&model.Event{}, eventId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var payments []model.EventPayment
	if err := db.Where("event_id = ?", eventId).Order("payment_date DESC").Find(&payments).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payments)
}

func CreateEventPayment(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreatePayment").(model.CreateEventPaymentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE PAYMENT INPUT TO LOCALS FAIL"))
	}
	eventId, ok := c.Locals("inputEventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE EVENT ID TO LOCALS FAIL"))
	}

	db := database.DB
	if err := db.First(&model.Event{}, eventId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	newPayment := model.EventPayment{
		PaymentDate:   time.Now(),
		PaymentMethod: input.PaymentMethod,
		EventId:       eventId,
	}
	if err := db.Create(&newPayment).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newPayment)
}
