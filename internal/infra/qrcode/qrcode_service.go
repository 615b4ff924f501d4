package qrcode

import (
	"encoding/json"
	"strings"
	"time"

	"lending/config"
	"lending/internal/domain/entity"
	"lending/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	slipType    = "loan_slip"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// LoanSlipData is the JSON payload carried by a loan slip QR code
type LoanSlipData struct {
	LoanID     string `json:"loan_id"`
	BookID     string `json:"book_id"`
	BorrowerID string `json:"borrower_id"`
	Due        string `json:"due"`
	URL        string `json:"url,omitempty"`
	Type       string `json:"type"`
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "M", "")
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateLoanSlip renders the loan reference as a PNG QR code
func (s *qrcodeService) GenerateLoanSlip(loan *entity.Loan) ([]byte, error) {
	if loan == nil {
		return nil, errors.New("loan is required")
	}

	data := LoanSlipData{
		LoanID:     loan.ID.String(),
		BookID:     loan.BookID.String(),
		BorrowerID: loan.BorrowerID.String(),
		Due:        loan.ReturnDate.UTC().Format(time.RFC3339),
		Type:       slipType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/" + loan.ID.String()
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal loan slip data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseLoanSlip parses slip data and returns the loan id
func (s *qrcodeService) ParseLoanSlip(qrData string) (uuid.UUID, error) {
	var data LoanSlipData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal loan slip data")
	}

	if data.Type != slipType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	loanID, err := uuid.Parse(data.LoanID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse loan ID")
	}

	return loanID, nil
}
