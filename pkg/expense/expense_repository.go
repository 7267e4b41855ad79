package expense

import (
	"context"

	"jobcost-backend/entities"

	"gorm.io/gorm"
)

type (
	ExpenseRepository interface {
		CreateExpense(ctx context.Context, expense *entities.Expense) error
		GetExpenseByID(ctx context.Context, id string) (*entities.Expense, error)
		GetExpenses(ctx context.Context, userID string, projectID string, page, limit int) ([]*entities.Expense, int64, error)
		UpdateExpense(ctx context.Context, expense *entities.Expense) error
		DeleteExpense(ctx context.Context, id string) error
	}

	expenseRepository struct {
		db *gorm.DB
	}
)

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) CreateExpense(ctx context.Context, expense *entities.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) GetExpenseByID(ctx context.Context, id string) (*entities.Expense, error) {
	var expense entities.Expense
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) GetExpenses(ctx context.Context, userID string, projectID string, page, limit int) ([]*entities.Expense, int64, error) {
	var expenses []*entities.Expense
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	if err := query.Model(&entities.Expense{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("date desc").Find(&expenses).Error; err != nil {
		return nil, 0, err
	}

	return expenses, count, nil
}

func (r *expenseRepository) UpdateExpense(ctx context.Context, expense *entities.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) DeleteExpense(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Expense{}).Error
}
