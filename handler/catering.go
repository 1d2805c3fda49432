package handler

import (
	"errors"
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

var cateringSortFields = []string{"id", "catering_set", "price"}

func GetCaterings(c *fiber.Ctx) error {
	filterInput := new(model.FilterCatering)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Catering{})

	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(catering_set) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}

	var totalCount int64
	if err := condition.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	order, err := buildOrder(filterInput.SortSpec, cateringSortFields, "id ASC")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SORT_ORDER, err)
	}

	limit, page, offset := utils.NormalizePagination(filterInput.Limit, filterInput.Page, filterInput.Offset)
	var caterings []model.Catering
	if err := utils.ApplyPagination(condition, limit, offset).Order(order).Find(&caterings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       caterings,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

func CreateCatering(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateCatering").(model.CreateCateringInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE CATERING INPUT TO LOCALS FAIL"))
	}

	imageUrl, err := helper.SaveUploadedImage(c, "image")
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "image")
	}

	newCatering := new(model.Catering)
	copier.Copy(&newCatering, input)
	newCatering.ImageUrl = utils.StringPtr(imageUrl)

	if err := database.DB.Create(&newCatering).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newCatering)
}

func EditCatering(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditCatering").(model.EditCateringInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE CATERING INPUT TO LOCALS FAIL"))
	}
	cateringId, ok := c.Locals("inputCateringId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE CATERING ID TO LOCALS FAIL"))
	}

	imageUrl, err := helper.SaveUploadedImage(c, "image")
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "image")
	}

	db := database.DB
	tx := db.Begin()

	var catering model.Catering
	if err := tx.First(&catering, cateringId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updateData := map[string]interface{}{}
	if input.CateringSet != nil {
		updateData["catering_set"] = *input.CateringSet
	}
	if input.Price != nil {
		price, _ := utils.ParseFloatField(input.Price.String())
		updateData["price"] = price
	}
	if imageUrl != "" {
		updateData["image_url"] = imageUrl
	}

	if len(updateData) > 0 {
		if err := tx.Model(&catering).Updates(updateData).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
	}

	if err := tx.First(&catering, cateringId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, catering)
}

func DeleteCatering(c *fiber.Ctx) error {
	cateringId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE CATERING ID TO LOCALS FAIL"))
	}

	db := database.DB

	var catering model.Catering
	if err := db.First(&catering, cateringId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RECORD_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Bookings of this set go with it; the join rows carry no history worth keeping.
	tx := db.Begin()
	if err := tx.Where("catering_id = ?", cateringId).Delete(&model.EventCatering{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if err := tx.Delete(&catering).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	tx.Commit()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Catering deleted successfully"})
}
