package handlers

import (
	"errors"

	"jobcost-backend/domain"
	"jobcost-backend/internal/api/presenters"
	"jobcost-backend/pkg/receipt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReceiptHandler interface {
		UploadReceipt(c *fiber.Ctx) error
		GetReceipts(c *fiber.Ctx) error
		GetReceiptDetails(c *fiber.Ctx) error
		AnalyzeReceipt(c *fiber.Ctx) error
		GetReceiptAnalysis(c *fiber.Ctx) error
	}

	receiptHandler struct {
		receiptService receipt.ReceiptService
		validator      *validator.Validate
	}
)

func NewReceiptHandler(receiptService receipt.ReceiptService, validator *validator.Validate) ReceiptHandler {
	return &receiptHandler{
		receiptService: receiptService,
		validator:      validator,
	}
}

func (h *receiptHandler) UploadReceipt(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	file, err := c.FormFile("receipt_image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	req := domain.UploadReceiptRequest{
		ProjectID:    c.FormValue("project_id"),
		Description:  c.FormValue("description"),
		ReceiptImage: file,
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	res, err := h.receiptService.UploadReceipt(c.Context(), req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadReceipt, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadReceipt)
}

func (h *receiptHandler) GetReceipts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	projectID := c.Query("project_id")

	receipts, err := h.receiptService.GetReceipts(c.Context(), userID, projectID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReceipts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"receipts": receipts,
	}, fiber.StatusOK, domain.MessageSuccessGetReceipts)
}

func (h *receiptHandler) GetReceiptDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	receiptID := c.Params("id")

	res, err := h.receiptService.GetReceiptByID(c.Context(), receiptID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrReceiptNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetReceipt, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceipt)
}

// AnalyzeReceipt keeps the response envelope of the hosted function the web
// client was originally built against, so it bypasses the shared presenters.
func (h *receiptHandler) AnalyzeReceipt(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req struct {
		ReceiptID string `json:"receiptId"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": domain.ErrReceiptIDRequired.Error(),
		})
	}

	if req.ReceiptID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": domain.ErrReceiptIDRequired.Error(),
		})
	}

	res, err := h.receiptService.AnalyzeReceipt(c.Context(), req.ReceiptID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReceiptNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": domain.ErrReceiptNotFound.Error(),
			})
		case errors.Is(err, domain.ErrUnauthorizedReceiptAccess):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": domain.ErrUnauthorizedReceiptAccess.Error(),
			})
		case errors.Is(err, domain.ErrCreateAnalysisRecord):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": domain.ErrCreateAnalysisRecord.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *receiptHandler) GetReceiptAnalysis(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	receiptID := c.Params("id")

	res, err := h.receiptService.GetLatestAnalysis(c.Context(), receiptID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrReceiptNotFound) || errors.Is(err, domain.ErrAnalysisNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetAnalysis, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAnalysis, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAnalysis)
}
