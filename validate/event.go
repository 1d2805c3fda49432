package validate

import (
	"errors"
	"strconv"

	"event_manager/constants"
	"event_manager/model"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEventInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.Name == "" || input.StartDate == "" || input.EndDate == "" ||
			input.EventTypeId == 0 || input.VenueId == 0 || input.CustId == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, errors.New("missing required field"))
		}

		start, ok := utils.ParseDateField(input.StartDate)
		if !ok {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid startDate", nil, "startDate")
		}
		end, ok := utils.ParseDateField(input.EndDate)
		if !ok {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid endDate", nil, "endDate")
		}
		if !end.After(start) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_DATE_RANGE, nil, "endDate")
		}
		if input.Budget < 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.NEGATIVE_NUMER_REJECTED, nil, "budget")
		}

		c.Locals("inputCreateEvent", input)
		c.Locals("inputEventStart", start)
		c.Locals("inputEventEnd", end)
		return c.Next()
	}
}

func EditEvent(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		param := c.Params(key)
		id, err := strconv.Atoi(param)
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditEventInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		dropEmpty(&input.Name, &input.StartDate, &input.EndDate, &input.Desc, &input.Status)
		dropEmpty(&input.Budget, &input.EventTypeId, &input.VenueId, &input.CustId)

		if input.Status != nil && !utils.IsValidValueOfConstant(*input.Status, constants.EventStatuses) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_STATUS, nil, "status")
		}
		if input.StartDate != nil {
			if _, ok := utils.ParseDateField(*input.StartDate); !ok {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid startDate", nil, "startDate")
			}
		}
		if input.EndDate != nil {
			if _, ok := utils.ParseDateField(*input.EndDate); !ok {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid endDate", nil, "endDate")
			}
		}
		if input.Budget != nil {
			budget, ok := utils.ParseFloatField(input.Budget.String())
			if !ok || budget < 0 {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.NEGATIVE_NUMER_REJECTED, nil, "budget")
			}
		}
		for field, v := range map[string]*model.FlexNumber{
			"eventTypeId": input.EventTypeId,
			"venueId":     input.VenueId,
			"custId":      input.CustId,
		} {
			if v != nil {
				if _, ok := utils.ParseUintField(v.String()); !ok {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, nil, field)
				}
			}
		}

		c.Locals("inputEventId", uint(id))
		c.Locals("inputEditEvent", input)
		return c.Next()
	}
}

// FilterEvents rejects unknown values for the externally visible enums before
// the handler builds its query.
func FilterEvents() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filterInput := new(model.FilterEvent)
		if err := c.QueryParser(filterInput); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if filterInput.Status != "" && !utils.IsValidValueOfConstant(filterInput.Status, constants.EventStatuses) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS, errors.New("unknown status "+filterInput.Status))
		}
		if filterInput.EventType != "" && !utils.IsValidValueOfConstant(filterInput.EventType, constants.EventTypeNames) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_EVENT_TYPE, errors.New("unknown event type "+filterInput.EventType))
		}

		c.Locals("inputFilterEvent", *filterInput)
		return c.Next()
	}
}
