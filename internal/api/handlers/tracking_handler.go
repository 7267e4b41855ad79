package handlers

import (
	"errors"

	"jobcost-backend/domain"
	"jobcost-backend/internal/api/presenters"
	"jobcost-backend/pkg/hours"
	"jobcost-backend/pkg/mileage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TrackingHandler interface {
		CreateHoursEntry(c *fiber.Ctx) error
		GetHoursEntries(c *fiber.Ctx) error
		DeleteHoursEntry(c *fiber.Ctx) error
		CreateMileageEntry(c *fiber.Ctx) error
		GetMileageEntries(c *fiber.Ctx) error
		DeleteMileageEntry(c *fiber.Ctx) error
	}

	trackingHandler struct {
		hoursService   hours.HoursService
		mileageService mileage.MileageService
		validator      *validator.Validate
	}
)

func NewTrackingHandler(hoursService hours.HoursService, mileageService mileage.MileageService, validator *validator.Validate) TrackingHandler {
	return &trackingHandler{
		hoursService:   hoursService,
		mileageService: mileageService,
		validator:      validator,
	}
}

func (h *trackingHandler) CreateHoursEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateHoursEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateHoursEntry, err)
	}

	res, err := h.hoursService.CreateHoursEntry(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateHoursEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateHoursEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateHoursEntry)
}

func (h *trackingHandler) GetHoursEntries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	projectID := c.Query("project_id")

	res, err := h.hoursService.GetHoursEntries(c.Context(), userID, projectID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHoursEntries, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHoursEntries)
}

func (h *trackingHandler) DeleteHoursEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	if err := h.hoursService.DeleteHoursEntry(c.Context(), entryID, userID); err != nil {
		if errors.Is(err, domain.ErrHoursEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteHoursEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteHoursEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteHoursEntry)
}

func (h *trackingHandler) CreateMileageEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateMileageEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMileageEntry, err)
	}

	res, err := h.mileageService.CreateMileageEntry(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateMileageEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMileageEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMileageEntry)
}

func (h *trackingHandler) GetMileageEntries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	projectID := c.Query("project_id")

	res, err := h.mileageService.GetMileageEntries(c.Context(), userID, projectID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMileageEntries, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMileageEntries)
}

func (h *trackingHandler) DeleteMileageEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	if err := h.mileageService.DeleteMileageEntry(c.Context(), entryID, userID); err != nil {
		if errors.Is(err, domain.ErrMileageEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteMileageEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMileageEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMileageEntry)
}
