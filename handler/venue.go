package handler

import (
	"errors"
	"fmt"
	"strings"

	"event_manager/constants"
	"event_manager/database"
	"event_manager/helper"
	"event_manager/model"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

var venueSortFields = []string{"id", "name", "max_occupancy"}

func GetVenues(c *fiber.Ctx) error {
	filterInput := new(model.FilterVenue)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Venue{})

	if filterInput.VenueId != 0 {
		condition = condition.Where("id = ?", filterInput.VenueId)
	}
	if filterInput.SearchKey != "" {
		search := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where(
			db.Where("LOWER(name) LIKE ?", search).
				Or("LOWER(location) LIKE ?", search),
		)
	}

	var totalCount int64
	if err := condition.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	order, err := buildOrder(filterInput.SortSpec, venueSortFields, "id ASC")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SORT_ORDER, err)
	}

	limit, page, offset := utils.NormalizePagination(filterInput.Limit, filterInput.Page, filterInput.Offset)
	var venues []model.Venue
	if err := utils.ApplyPagination(condition, limit, offset).Order(order).Find(&venues).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       venues,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

func GetVenueBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")
	if slugParam == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "slug is required", nil)
	}

	var venue model.Venue
	err := database.DB.
		Preload("Events").
		Where("slug = ?", slugParam).
		First(&venue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, venue)
}

func CreateVenue(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateVenue").(model.CreateVenueInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE VENUE INPUT TO LOCALS FAIL"))
	}

	db := database.DB

	var existing model.Venue
	if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_KEY, nil, "email")
	}

	imageUrl, err := helper.SaveUploadedImage(c, "image")
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "image")
	}

	tx := db.Begin()
	newVenue := new(model.Venue)
	copier.Copy(&newVenue, input)
	newVenue.Slug = helper.GenerateUniqueVenueSlug(tx, input.Name)
	newVenue.ImageUrl = utils.StringPtr(imageUrl)

	if err := tx.Create(&newVenue).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusCreated, newVenue)
}

func EditVenue(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditVenue").(model.EditVenueInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE VENUE INPUT TO LOCALS FAIL"))
	}
	venueId, ok := c.Locals("inputVenueId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE VENUE ID TO LOCALS FAIL"))
	}

	imageUrl, err := helper.SaveUploadedImage(c, "image")
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "image")
	}

	db := database.DB
	tx := db.Begin()

	var venue model.Venue
	if err := tx.First(&venue, venueId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updateData := map[string]interface{}{}
	if input.Name != nil {
		updateData["name"] = *input.Name
		updateData["slug"] = helper.GenerateUniqueVenueSlug(tx, *input.Name)
	}
	if input.Location != nil {
		updateData["location"] = *input.Location
	}
	if input.MaxOccupancy != nil {
		occ, _ := utils.ParseUintField(input.MaxOccupancy.String())
		updateData["max_occupancy"] = occ
	}
	if input.Email != nil {
		updateData["email"] = *input.Email
	}
	if input.Phone != nil {
		updateData["phone"] = *input.Phone
	}
	if imageUrl != "" {
		updateData["image_url"] = imageUrl
	}

	if len(updateData) > 0 {
		if err := tx.Model(&venue).Updates(updateData).Error; err != nil {
			tx.Rollback()
			return editFailureResponse(c, err)
		}
	}

	if err := tx.First(&venue, venueId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, venue)
}

func DeleteVenue(c *fiber.Ctx) error {
	venueId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE VENUE ID TO LOCALS FAIL"))
	}

	db := database.DB

	var venue model.Venue
	if err := db.First(&venue, venueId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var dependentCount int64
	db.Model(&model.Event{}).Where("venue_id = ?", venueId).Count(&dependentCount)
	if dependentCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.DELETE_CONFLICT,
			fmt.Errorf("venue %d is linked to %d event(s)", venueId, dependentCount))
	}

	if err := db.Delete(&venue).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Venue deleted successfully"})
}

// editFailureResponse maps an Updates error onto the response. A unique index
// violation is the caller sending a value another record already holds, so it
// comes back as a 400 rather than a server error.
func editFailureResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DUPLICATE_KEY, err)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
}

// buildOrder maps a SortSpec onto a SQL order clause. Unknown sort fields fall
// back to the entity default; an unknown direction is a client error.
func buildOrder(spec model.SortSpec, allowed []string, fallback string) (string, error) {
	direction := strings.ToUpper(spec.SortOrder)
	if direction == "" {
		direction = "ASC"
	}
	if direction != "ASC" && direction != "DESC" {
		return "", errors.New("unknown sort order " + spec.SortOrder)
	}
	if spec.SortBy == "" || !utils.IsValidValueOfConstant(spec.SortBy, allowed) {
		return fallback, nil
	}
	return spec.SortBy + " " + direction, nil
}
