package receipt

import (
	"context"

	"jobcost-backend/entities"

	"gorm.io/gorm"
)

type (
	ReceiptRepository interface {
		CreateReceiptUpload(ctx context.Context, upload *entities.ReceiptUpload) error
		GetReceiptUploadByID(ctx context.Context, id string) (*entities.ReceiptUpload, error)
		GetReceiptUploads(ctx context.Context, userID string, projectID string) ([]*entities.ReceiptUpload, error)

		CreateReceiptAnalysis(ctx context.Context, analysis *entities.ReceiptAnalysis) error
		UpdateReceiptAnalysis(ctx context.Context, analysis *entities.ReceiptAnalysis) error
		GetLatestAnalysisByReceiptID(ctx context.Context, receiptID string) (*entities.ReceiptAnalysis, error)

		CreateReceiptItems(ctx context.Context, items []*entities.ReceiptItem) error
		GetItemsByAnalysisID(ctx context.Context, analysisID string) ([]*entities.ReceiptItem, error)
	}

	receiptRepository struct {
		db *gorm.DB
	}
)

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) CreateReceiptUpload(ctx context.Context, upload *entities.ReceiptUpload) error {
	return r.db.WithContext(ctx).Create(upload).Error
}

func (r *receiptRepository) GetReceiptUploadByID(ctx context.Context, id string) (*entities.ReceiptUpload, error) {
	var upload entities.ReceiptUpload
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&upload).Error; err != nil {
		return nil, err
	}
	return &upload, nil
}

func (r *receiptRepository) GetReceiptUploads(ctx context.Context, userID string, projectID string) ([]*entities.ReceiptUpload, error) {
	var uploads []*entities.ReceiptUpload

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	if err := query.Order("upload_date desc").Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

func (r *receiptRepository) CreateReceiptAnalysis(ctx context.Context, analysis *entities.ReceiptAnalysis) error {
	return r.db.WithContext(ctx).Create(analysis).Error
}

func (r *receiptRepository) UpdateReceiptAnalysis(ctx context.Context, analysis *entities.ReceiptAnalysis) error {
	return r.db.WithContext(ctx).Save(analysis).Error
}

func (r *receiptRepository) GetLatestAnalysisByReceiptID(ctx context.Context, receiptID string) (*entities.ReceiptAnalysis, error) {
	var analysis entities.ReceiptAnalysis
	if err := r.db.WithContext(ctx).
		Where("receipt_id = ?", receiptID).
		Order("analysis_date desc").
		First(&analysis).Error; err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (r *receiptRepository) CreateReceiptItems(ctx context.Context, items []*entities.ReceiptItem) error {
	return r.db.WithContext(ctx).Create(items).Error
}

func (r *receiptRepository) GetItemsByAnalysisID(ctx context.Context, analysisID string) ([]*entities.ReceiptItem, error) {
	var items []*entities.ReceiptItem
	if err := r.db.WithContext(ctx).
		Where("receipt_analysis_id = ?", analysisID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
