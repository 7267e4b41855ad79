package expense

import (
	"context"
	"errors"
	"time"

	"jobcost-backend/domain"
	"jobcost-backend/entities"
	"jobcost-backend/pkg/project"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ExpenseService interface {
		CreateExpense(ctx context.Context, req domain.CreateExpenseRequest, userID string) (domain.ExpenseResponse, error)
		GetExpenses(ctx context.Context, userID string, projectID string, page, limit int) ([]domain.ExpenseResponse, int64, error)
		GetExpenseByID(ctx context.Context, id string, userID string) (domain.ExpenseResponse, error)
		UpdateExpense(ctx context.Context, id string, req domain.UpdateExpenseRequest, userID string) error
		DeleteExpense(ctx context.Context, id string, userID string) error
	}

	expenseService struct {
		expenseRepository ExpenseRepository
		projectRepository project.ProjectRepository
	}
)

func NewExpenseService(expenseRepository ExpenseRepository, projectRepository project.ProjectRepository) ExpenseService {
	return &expenseService{
		expenseRepository: expenseRepository,
		projectRepository: projectRepository,
	}
}

func (s *expenseService) CreateExpense(ctx context.Context, req domain.CreateExpenseRequest, userID string) (domain.ExpenseResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ExpenseResponse{}, domain.ErrParseUUID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.ExpenseResponse{}, domain.ErrInvalidExpenseDate
	}

	if req.Amount <= 0 {
		return domain.ExpenseResponse{}, domain.ErrInvalidExpenseAmount
	}

	proj, err := s.projectRepository.GetProjectByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ExpenseResponse{}, domain.ErrProjectNotFound
		}
		return domain.ExpenseResponse{}, err
	}
	if proj.UserID.String() != userID {
		return domain.ExpenseResponse{}, domain.ErrUnauthorizedProjectAccess
	}

	expense := &entities.Expense{
		ID:        uuid.New(),
		UserID:    userUUID,
		ProjectID: proj.ID,
		Title:     req.Title,
		Amount:    req.Amount,
		Date:      date,
		Vendor:    req.Vendor,
		Category:  req.Category,
	}

	if err := s.expenseRepository.CreateExpense(ctx, expense); err != nil {
		return domain.ExpenseResponse{}, err
	}

	return toExpenseResponse(expense), nil
}

func (s *expenseService) GetExpenses(ctx context.Context, userID string, projectID string, page, limit int) ([]domain.ExpenseResponse, int64, error) {
	expenses, count, err := s.expenseRepository.GetExpenses(ctx, userID, projectID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		response = append(response, toExpenseResponse(expense))
	}
	return response, count, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, id string, userID string) (domain.ExpenseResponse, error) {
	expense, err := s.expenseRepository.GetExpenseByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ExpenseResponse{}, domain.ErrExpenseNotFound
		}
		return domain.ExpenseResponse{}, err
	}

	if expense.UserID.String() != userID {
		return domain.ExpenseResponse{}, domain.ErrUnauthorizedExpenseAccess
	}

	return toExpenseResponse(expense), nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, id string, req domain.UpdateExpenseRequest, userID string) error {
	expense, err := s.expenseRepository.GetExpenseByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrExpenseNotFound
		}
		return err
	}

	if expense.UserID.String() != userID {
		return domain.ErrUnauthorizedExpenseAccess
	}

	if req.Title != "" {
		expense.Title = req.Title
	}
	if req.Amount > 0 {
		expense.Amount = req.Amount
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return domain.ErrInvalidExpenseDate
		}
		expense.Date = date
	}
	if req.Vendor != "" {
		expense.Vendor = req.Vendor
	}
	if req.Category != "" {
		expense.Category = req.Category
	}

	return s.expenseRepository.UpdateExpense(ctx, expense)
}

func (s *expenseService) DeleteExpense(ctx context.Context, id string, userID string) error {
	expense, err := s.expenseRepository.GetExpenseByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrExpenseNotFound
		}
		return err
	}

	if expense.UserID.String() != userID {
		return domain.ErrUnauthorizedExpenseAccess
	}

	return s.expenseRepository.DeleteExpense(ctx, id)
}

func toExpenseResponse(expense *entities.Expense) domain.ExpenseResponse {
	return domain.ExpenseResponse{
		ID:         expense.ID.String(),
		ProjectID:  expense.ProjectID.String(),
		Title:      expense.Title,
		Amount:     expense.Amount,
		Date:       expense.Date,
		Vendor:     expense.Vendor,
		Category:   expense.Category,
		ReceiptURL: expense.ReceiptURL,
		CreatedAt:  expense.CreatedAt,
	}
}
