package receipt

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"jobcost-backend/domain"
	"jobcost-backend/entities"
	"jobcost-backend/internal/utils/storage"
	"jobcost-backend/pkg/project"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReceiptService interface {
		UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error)
		GetReceipts(ctx context.Context, userID string, projectID string) ([]domain.ReceiptResponse, error)
		GetReceiptByID(ctx context.Context, id string, userID string) (domain.ReceiptResponse, error)
		AnalyzeReceipt(ctx context.Context, receiptID string, userID string) (domain.AnalyzeReceiptResponse, error)
		GetLatestAnalysis(ctx context.Context, receiptID string, userID string) (domain.ReceiptAnalysisResponse, error)
	}

	receiptService struct {
		receiptRepository ReceiptRepository
		projectRepository project.ProjectRepository
		s3                storage.AwsS3
		analyzer          ReceiptAnalyzer
	}
)

func NewReceiptService(
	receiptRepository ReceiptRepository,
	projectRepository project.ProjectRepository,
	s3 storage.AwsS3,
	analyzer ReceiptAnalyzer,
) ReceiptService {
	return &receiptService{
		receiptRepository: receiptRepository,
		projectRepository: projectRepository,
		s3:                s3,
		analyzer:          analyzer,
	}
}

func (s *receiptService) UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadReceiptResponse{}, domain.ErrParseUUID
	}

	proj, err := s.projectRepository.GetProjectByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UploadReceiptResponse{}, domain.ErrProjectNotFound
		}
		return domain.UploadReceiptResponse{}, err
	}
	if proj.UserID.String() != userID {
		return domain.UploadReceiptResponse{}, domain.ErrUnauthorizedProjectAccess
	}

	receiptID := uuid.New()
	fileName := fmt.Sprintf("receipt-%s", receiptID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.ReceiptImage, "receipts", storage.AllowImage...)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	upload := &entities.ReceiptUpload{
		ID:          receiptID,
		UserID:      userUUID,
		ProjectID:   proj.ID,
		FilePath:    objectKey,
		FileName:    req.ReceiptImage.Filename,
		Description: req.Description,
		UploadDate:  time.Now(),
	}

	if err := s.receiptRepository.CreateReceiptUpload(ctx, upload); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadReceiptResponse{}, err
	}

	return domain.UploadReceiptResponse{
		ReceiptID:  upload.ID.String(),
		FileURL:    s.s3.GetPublicLinkKey(objectKey),
		FileName:   upload.FileName,
		UploadDate: upload.UploadDate,
	}, nil
}

func (s *receiptService) GetReceipts(ctx context.Context, userID string, projectID string) ([]domain.ReceiptResponse, error) {
	uploads, err := s.receiptRepository.GetReceiptUploads(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ReceiptResponse, 0, len(uploads))
	for _, upload := range uploads {
		response = append(response, s.toReceiptResponse(upload))
	}
	return response, nil
}

func (s *receiptService) GetReceiptByID(ctx context.Context, id string, userID string) (domain.ReceiptResponse, error) {
	upload, err := s.receiptRepository.GetReceiptUploadByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiptResponse{}, domain.ErrReceiptNotFound
		}
		return domain.ReceiptResponse{}, err
	}

	if upload.UserID.String() != userID {
		return domain.ReceiptResponse{}, domain.ErrUnauthorizedReceiptAccess
	}

	return s.toReceiptResponse(upload), nil
}

// AnalyzeReceipt runs one analysis attempt. Exactly one analysis row is
// created per call and every path after that creation settles the row into a
// terminal status before returning; re-analysis is simply calling this again,
// which creates a new independent row.
func (s *receiptService) AnalyzeReceipt(ctx context.Context, receiptID string, userID string) (domain.AnalyzeReceiptResponse, error) {
	upload, err := s.receiptRepository.GetReceiptUploadByID(ctx, receiptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AnalyzeReceiptResponse{}, domain.ErrReceiptNotFound
		}
		return domain.AnalyzeReceiptResponse{}, err
	}

	if upload.UserID.String() != userID {
		return domain.AnalyzeReceiptResponse{}, domain.ErrUnauthorizedReceiptAccess
	}

	analysis := &entities.ReceiptAnalysis{
		ID:           uuid.New(),
		ReceiptID:    upload.ID,
		Status:       entities.AnalysisStatusProcessing,
		AnalysisDate: time.Now(),
	}

	if err := s.receiptRepository.CreateReceiptAnalysis(ctx, analysis); err != nil {
		return domain.AnalyzeReceiptResponse{}, domain.ErrCreateAnalysisRecord
	}

	imageURL := s.s3.GetPublicLinkKey(upload.FilePath)

	rawResponse, responseText, err := s.analyzer.AnalyzeReceiptImage(ctx, imageURL)
	analysis.RawResponse = string(rawResponse)
	if err != nil {
		s.finishAnalysis(ctx, analysis, entities.AnalysisStatusFailed, err.Error())
		return domain.AnalyzeReceiptResponse{}, err
	}

	parsed, err := parseExtractedReceipt(responseText)
	if err != nil {
		s.finishAnalysis(ctx, analysis, entities.AnalysisStatusFailed, err.Error())
		return domain.AnalyzeReceiptResponse{}, err
	}

	items := make([]*entities.ReceiptItem, 0, len(parsed.ReceiptItems))
	for _, item := range parsed.ReceiptItems {
		items = append(items, &entities.ReceiptItem{
			ID:                uuid.New(),
			ReceiptAnalysisID: analysis.ID,
			ReceiptID:         upload.ID,
			ItemName:          item.ItemName,
			Quantity:          item.Quantity,
			UnitPrice:         item.UnitPrice,
			TotalPrice:        item.TotalPrice,
			ItemCategory:      item.ItemCategory,
			Notes:             item.Notes,
		})
	}

	if len(items) > 0 {
		if err := s.receiptRepository.CreateReceiptItems(ctx, items); err != nil {
			// Extraction succeeded but persistence did not. The caller still
			// gets the extracted metadata; the row records the shortfall.
			s.finishAnalysis(ctx, analysis, entities.AnalysisStatusPartial,
				fmt.Sprintf("items extraction succeeded but database insert failed: %s", err.Error()))
			return s.toAnalyzeResponse(analysis, parsed, len(items)), nil
		}
	}

	s.finishAnalysis(ctx, analysis, entities.AnalysisStatusCompleted, "")
	return s.toAnalyzeResponse(analysis, parsed, len(items)), nil
}

func (s *receiptService) GetLatestAnalysis(ctx context.Context, receiptID string, userID string) (domain.ReceiptAnalysisResponse, error) {
	upload, err := s.receiptRepository.GetReceiptUploadByID(ctx, receiptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiptAnalysisResponse{}, domain.ErrReceiptNotFound
		}
		return domain.ReceiptAnalysisResponse{}, err
	}

	if upload.UserID.String() != userID {
		return domain.ReceiptAnalysisResponse{}, domain.ErrUnauthorizedReceiptAccess
	}

	analysis, err := s.receiptRepository.GetLatestAnalysisByReceiptID(ctx, receiptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiptAnalysisResponse{}, domain.ErrAnalysisNotFound
		}
		return domain.ReceiptAnalysisResponse{}, err
	}

	items, err := s.receiptRepository.GetItemsByAnalysisID(ctx, analysis.ID.String())
	if err != nil {
		return domain.ReceiptAnalysisResponse{}, err
	}

	response := domain.ReceiptAnalysisResponse{
		ID:           analysis.ID.String(),
		ReceiptID:    analysis.ReceiptID.String(),
		Status:       analysis.Status,
		AnalysisDate: analysis.AnalysisDate,
		ErrorMessage: analysis.ErrorMessage,
		Items:        make([]domain.ReceiptItemResponse, 0, len(items)),
	}
	for _, item := range items {
		response.Items = append(response.Items, domain.ReceiptItemResponse{
			ID:           item.ID.String(),
			ItemName:     item.ItemName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TotalPrice:   item.TotalPrice,
			ItemCategory: item.ItemCategory,
			Notes:        item.Notes,
		})
	}

	return response, nil
}

// finishAnalysis settles an analysis row into its terminal status. A failed
// update here is logged rather than surfaced; the caller's error takes
// precedence.
func (s *receiptService) finishAnalysis(ctx context.Context, analysis *entities.ReceiptAnalysis, status string, errMsg string) {
	analysis.Status = status
	analysis.ErrorMessage = errMsg
	if err := s.receiptRepository.UpdateReceiptAnalysis(ctx, analysis); err != nil {
		log.Printf("Error updating receipt analysis %s: %v", analysis.ID, err)
	}
}

func (s *receiptService) toAnalyzeResponse(analysis *entities.ReceiptAnalysis, parsed *extractedReceipt, itemCount int) domain.AnalyzeReceiptResponse {
	return domain.AnalyzeReceiptResponse{
		Success:      true,
		AnalysisID:   analysis.ID.String(),
		ItemCount:    itemCount,
		ReceiptTotal: parsed.ReceiptTotal,
		ReceiptDate:  parsed.ReceiptDate,
		VendorName:   parsed.VendorName,
	}
}

func (s *receiptService) toReceiptResponse(upload *entities.ReceiptUpload) domain.ReceiptResponse {
	return domain.ReceiptResponse{
		ID:          upload.ID.String(),
		ProjectID:   upload.ProjectID.String(),
		FileName:    upload.FileName,
		FileURL:     s.s3.GetPublicLinkKey(upload.FilePath),
		Description: upload.Description,
		UploadDate:  upload.UploadDate,
	}
}
