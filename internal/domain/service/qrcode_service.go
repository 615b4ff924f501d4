package service

import (
	"lending/internal/domain/entity"

	"github.com/google/uuid"
)

// QRCodeService renders and reads the QR code printed on a loan slip.
type QRCodeService interface {
	// GenerateLoanSlip returns a PNG encoding the loan reference and due date.
	GenerateLoanSlip(loan *entity.Loan) ([]byte, error)

	// ParseLoanSlip returns the loan id carried by slip data.
	ParseLoanSlip(qrData string) (uuid.UUID, error)
}
