package handler

import (
	"errors"
	"time"

	"event_manager/constants"
	"event_manager/database"
	"event_manager/helper"
	"event_manager/model"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var eventSortFields = []string{"id", "name", "budget", "start_date"}

func GetEvents(c *fiber.Ctx) error {
	filterInput, ok := c.Locals("inputFilterEvent").(model.FilterEvent)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE EVENT FILTER TO LOCALS FAIL"))
	}

	db := database.DB
	condition := db.Model(&model.Event{})

	if filterInput.EventId != 0 {
		condition = condition.Where("events.id = ?", filterInput.EventId)
	}
	if filterInput.CustId != 0 {
		condition = condition.Where("events.cust_id = ?", filterInput.CustId)
	}
	if filterInput.VenueId != 0 {
		condition = condition.Where("events.venue_id = ?", filterInput.VenueId)
	}
	if filterInput.Status != "" {
		condition = condition.Where("events.status = ?", filterInput.Status)
	}
	if filterInput.EventType != "" {
		condition = condition.
			Joins("JOIN event_types ON event_types.id = events.event_type_id").
			Where("event_types.name = ?", filterInput.EventType)
	}

	var totalCount int64
	if err := condition.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	order, err := buildOrder(filterInput.SortSpec, eventSortFields, "events.start_date ASC")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SORT_ORDER, err)
	}
	if filterInput.SortBy != "" && utils.IsValidValueOfConstant(filterInput.SortBy, eventSortFields) {
		order = "events." + order
	}

	limit, page, offset := utils.NormalizePagination(filterInput.Limit, filterInput.Page, filterInput.Offset)
	query := utils.ApplyPagination(condition, limit, offset).Order(order)
	if filterInput.Include {
		query = query.
			Preload("EventType").
			Preload("Venue").
			Preload("Customer").
			Preload("Caterings").
			Preload("Employees")
	}

	var events []model.Event
	if err := query.Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       events,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

func GetEventById(c *fiber.Ctx) error {
	eventId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE EVENT ID TO LOCALS FAIL"))
	}

	var event model.Event
	err := database.DB.
		Preload("EventType").
		Preload("Venue").
		Preload("Customer").
		Preload("Caterings").
		Preload("Employees").
		Preload("Tickets").
		Preload("Payments").
		First(&event, eventId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func CreateEvent(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateEvent").(model.CreateEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE EVENT INPUT TO LOCALS FAIL"))
	}
	start, _ := c.Locals("inputEventStart").(time.Time)
	end, _ := c.Locals("inputEventEnd").(time.Time)

	db := database.DB

	// Every FK must resolve before the insert; surface which one is broken.
	for field, check := range map[string]error{
		"eventTypeId": db.First(&model.EventType{}, input.EventTypeId).Error,
		"venueId":     db.First(&model.Venue{}, input.VenueId).Error,
		"custId":      db.First(&model.Customer{}, input.CustId).Error,
	} {
		if check != nil {
			if errors.Is(check, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Referenced record does not exist", check, field)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, check)
		}
	}

	newEvent := model.Event{
		Name:        input.Name,
		StartDate:   start,
		EndDate:     end,
		Desc:        input.Desc,
		Budget:      input.Budget,
		Status:      constants.STATUS_EVENT_PENDING,
		EventTypeId: input.EventTypeId,
		VenueId:     input.VenueId,
		CustId:      input.CustId,
	}
	if err := db.Create(&newEvent).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newEvent)
}

func EditEvent(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditEvent").(model.EditEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE EVENT INPUT TO LOCALS FAIL"))
	}
	eventId, ok := c.Locals("inputEventId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE EVENT ID TO LOCALS FAIL"))
	}

	db := database.DB
	tx := db.Begin()

	var event model.Event
	if err := tx.First(&event, eventId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	newStart, newEnd, rangeOk := resolveDateRange(event, input.StartDate, input.EndDate)
	if !rangeOk {
		tx.Rollback()
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_DATE_RANGE, nil, "endDate")
	}

	statusChanged := false
	if input.Status != nil && *input.Status != event.Status {
		if !helper.CanTransitionStatus(event.Status, *input.Status) {
			tx.Rollback()
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_STATUS_CHANGE, nil, "status")
		}
		statusChanged = true
	}

	updateData := map[string]interface{}{}
	if input.Name != nil {
		updateData["name"] = *input.Name
	}
	if input.StartDate != nil {
		updateData["start_date"] = newStart
	}
	if input.EndDate != nil {
		updateData["end_date"] = newEnd
	}
	if input.Desc != nil {
		updateData["desc"] = *input.Desc
	}
	if input.Budget != nil {
		budget, _ := utils.ParseFloatField(input.Budget.String())
		updateData["budget"] = budget
	}
	if input.Status != nil {
		updateData["status"] = *input.Status
	}
	if input.EventTypeId != nil {
		id, _ := utils.ParseUintField(input.EventTypeId.String())
		updateData["event_type_id"] = id
	}
	if input.VenueId != nil {
		id, _ := utils.ParseUintField(input.VenueId.String())
		updateData["venue_id"] = id
	}
	if input.CustId != nil {
		id, _ := utils.ParseUintField(input.CustId.String())
		updateData["cust_id"] = id
	}

	if len(updateData) > 0 {
		if err := tx.Model(&event).Updates(updateData).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
	}

	if err := tx.
		Preload("EventType").
		Preload("Venue").
		Preload("Customer").
		Preload("Customer.User").
		Preload("Caterings").
		First(&event, eventId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	if statusChanged && event.Customer != nil && event.Customer.User != nil {
		venueName := ""
		if event.Venue != nil {
			venueName = event.Venue.Name
		}
		utils.SendEventStatusEmail(event.Customer.User.Email, utils.EventStatusData{
			CustomerName: event.Customer.FirstName + " " + event.Customer.LastName,
			EventName:    event.Name,
			Status:       event.Status,
			StartDate:    event.StartDate.Format("2006-01-02"),
			VenueName:    venueName,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

// resolveDateRange merges a sparse date edit over the stored range. Ordering
// has to hold against the stored values when only one side of the range is in
// the payload; ok is false when the merged range does not end after it starts.
func resolveDateRange(event model.Event, startStr, endStr *string) (start, end time.Time, ok bool) {
	start = event.StartDate
	end = event.EndDate
	if startStr != nil {
		start, _ = utils.ParseDateField(*startStr)
	}
	if endStr != nil {
		end, _ = utils.ParseDateField(*endStr)
	}
	if (startStr != nil || endStr != nil) && !end.After(start) {
		return start, end, false
	}
	return start, end, true
}

func DeleteEvent(c *fiber.Ctx) error {
	eventId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE EVENT ID TO LOCALS FAIL"))
	}

	db := database.DB

	var event model.Event
	if err := db.First(&event, eventId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tx := db.Begin()
	for _, cleanup := range []error{
		tx.Where("event_id = ?", eventId).Delete(&model.EmployeeEvent{}).Error,
		tx.Where("event_id = ?", eventId).Delete(&model.EventCatering{}).Error,
		tx.Where("event_id = ?", eventId).Delete(&model.Ticket{}).Error,
		tx.Where("event_id = ?", eventId).Delete(&model.SoldTicket{}).Error,
		tx.Where("event_id = ?", eventId).Delete(&model.EventPayment{}).Error,
	} {
		if cleanup != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, cleanup)
		}
	}
	if err := tx.Delete(&event).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Event deleted successfully"})
}

func GetEventTypes(c *fiber.Ctx) error {
	var eventTypes []model.EventType
	if err := database.DB.Order("id ASC").Find(&eventTypes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, eventTypes)
}
