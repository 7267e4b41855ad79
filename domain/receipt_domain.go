package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessUploadReceipt = "receipt uploaded successfully"
	MessageSuccessGetReceipts   = "receipts retrieved successfully"
	MessageSuccessGetReceipt    = "receipt retrieved successfully"
	MessageSuccessGetAnalysis   = "receipt analysis retrieved successfully"

	MessageFailedUploadReceipt = "failed to upload receipt"
	MessageFailedGetReceipts   = "failed to retrieve receipts"
	MessageFailedGetReceipt    = "failed to retrieve receipt"
	MessageFailedGetAnalysis   = "failed to retrieve receipt analysis"

	ErrReceiptNotFound           = errors.New("receipt not found")
	ErrReceiptIDRequired         = errors.New("receipt ID is required")
	ErrAnalysisNotFound          = errors.New("no analysis found for receipt")
	ErrCreateAnalysisRecord      = errors.New("failed to create analysis record")
	ErrInferenceCallFailed       = errors.New("inference call failed")
	ErrParseInferenceResponse    = errors.New("failed to parse inference response")
	ErrUnauthorizedReceiptAccess = errors.New("unauthorized access to receipt")
	ErrInvalidReceiptImage       = errors.New("invalid receipt image format")
)

type (
	UploadReceiptRequest struct {
		ProjectID    string                `json:"project_id" form:"project_id" validate:"required,uuid"`
		Description  string                `json:"description" form:"description" validate:"omitempty"`
		ReceiptImage *multipart.FileHeader `json:"receipt_image" form:"receipt_image" validate:"required"`
	}

	UploadReceiptResponse struct {
		ReceiptID  string    `json:"receipt_id"`
		FileURL    string    `json:"file_url"`
		FileName   string    `json:"file_name"`
		UploadDate time.Time `json:"upload_date"`
	}

	ReceiptResponse struct {
		ID          string    `json:"id"`
		ProjectID   string    `json:"project_id"`
		FileName    string    `json:"file_name"`
		FileURL     string    `json:"file_url"`
		Description string    `json:"description,omitempty"`
		UploadDate  time.Time `json:"upload_date"`
	}

	// AnalyzeReceiptResponse mirrors the envelope browser clients already
	// consume from the analyze endpoint. Metadata fields come straight from
	// the model output and may be null.
	AnalyzeReceiptResponse struct {
		Success      bool     `json:"success"`
		AnalysisID   string   `json:"analysisId"`
		ItemCount    int      `json:"itemCount"`
		ReceiptTotal *float64 `json:"receiptTotal"`
		ReceiptDate  *string  `json:"receiptDate"`
		VendorName   *string  `json:"vendorName"`
	}

	ReceiptItemResponse struct {
		ID           string   `json:"id"`
		ItemName     string   `json:"item_name"`
		Quantity     *float64 `json:"quantity"`
		UnitPrice    *float64 `json:"unit_price"`
		TotalPrice   *float64 `json:"total_price"`
		ItemCategory *string  `json:"item_category"`
		Notes        *string  `json:"notes"`
	}

	ReceiptAnalysisResponse struct {
		ID           string                `json:"id"`
		ReceiptID    string                `json:"receipt_id"`
		Status       string                `json:"status"`
		AnalysisDate time.Time             `json:"analysis_date"`
		ErrorMessage string                `json:"error_message,omitempty"`
		Items        []ReceiptItemResponse `json:"items"`
	}
)
