package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateExpense = "expense created successfully"
	MessageSuccessGetExpenses   = "expenses retrieved successfully"
	MessageSuccessGetExpense    = "expense retrieved successfully"
	MessageSuccessUpdateExpense = "expense updated successfully"
	MessageSuccessDeleteExpense = "expense deleted successfully"

	MessageFailedCreateExpense = "failed to create expense"
	MessageFailedGetExpenses   = "failed to retrieve expenses"
	MessageFailedGetExpense    = "failed to retrieve expense"
	MessageFailedUpdateExpense = "failed to update expense"
	MessageFailedDeleteExpense = "failed to delete expense"

	ErrExpenseNotFound           = errors.New("expense not found")
	ErrUnauthorizedExpenseAccess = errors.New("unauthorized access to expense")
	ErrInvalidExpenseAmount      = errors.New("amount must be positive")
	ErrInvalidExpenseDate        = errors.New("invalid expense date")
)

type (
	CreateExpenseRequest struct {
		ProjectID string  `json:"project_id" validate:"required,uuid"`
		Title     string  `json:"title" validate:"required"`
		Amount    float64 `json:"amount" validate:"required,gt=0"`
		Date      string  `json:"date" validate:"required"`
		Vendor    string  `json:"vendor" validate:"omitempty"`
		Category  string  `json:"category" validate:"omitempty"`
	}

	UpdateExpenseRequest struct {
		Title    string  `json:"title" validate:"omitempty"`
		Amount   float64 `json:"amount" validate:"omitempty,gt=0"`
		Date     string  `json:"date" validate:"omitempty"`
		Vendor   string  `json:"vendor" validate:"omitempty"`
		Category string  `json:"category" validate:"omitempty"`
	}

	ExpenseResponse struct {
		ID         string    `json:"id"`
		ProjectID  string    `json:"project_id"`
		Title      string    `json:"title"`
		Amount     float64   `json:"amount"`
		Date       time.Time `json:"date"`
		Vendor     string    `json:"vendor,omitempty"`
		Category   string    `json:"category,omitempty"`
		ReceiptURL string    `json:"receipt_url,omitempty"`
		CreatedAt  time.Time `json:"created_at"`
	}
)
