package handlers

import (
	"errors"
	"strconv"

	"jobcost-backend/domain"
	"jobcost-backend/internal/api/presenters"
	"jobcost-backend/pkg/expense"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ExpenseHandler interface {
		CreateExpense(c *fiber.Ctx) error
		GetExpenses(c *fiber.Ctx) error
		GetExpenseDetails(c *fiber.Ctx) error
		UpdateExpense(c *fiber.Ctx) error
		DeleteExpense(c *fiber.Ctx) error
	}

	expenseHandler struct {
		expenseService expense.ExpenseService
		validator      *validator.Validate
	}
)

func NewExpenseHandler(expenseService expense.ExpenseService, validator *validator.Validate) ExpenseHandler {
	return &expenseHandler{
		expenseService: expenseService,
		validator:      validator,
	}
}

func (h *expenseHandler) CreateExpense(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateExpenseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateExpense, err)
	}

	res, err := h.expenseService.CreateExpense(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateExpense, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateExpense, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateExpense)
}

func (h *expenseHandler) GetExpenses(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	projectID := c.Query("project_id")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	expenses, count, err := h.expenseService.GetExpenses(c.Context(), userID, projectID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetExpenses, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"expenses": expenses,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetExpenses)
}

func (h *expenseHandler) GetExpenseDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	expenseID := c.Params("id")

	res, err := h.expenseService.GetExpenseByID(c.Context(), expenseID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetExpense, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetExpense, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetExpense)
}

func (h *expenseHandler) UpdateExpense(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	expenseID := c.Params("id")
	req := new(domain.UpdateExpenseRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateExpense, err)
	}

	if err := h.expenseService.UpdateExpense(c.Context(), expenseID, *req, userID); err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateExpense, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateExpense, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateExpense)
}

func (h *expenseHandler) DeleteExpense(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	expenseID := c.Params("id")

	if err := h.expenseService.DeleteExpense(c.Context(), expenseID, userID); err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteExpense, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteExpense, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteExpense)
}
