package qrcode

import (
	"encoding/json"
	"testing"
	"time"

	"lending/config"
	"lending/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoan() *entity.Loan {
	rental := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	return &entity.Loan{
		ID:         uuid.New(),
		BookID:     uuid.New(),
		BorrowerID: uuid.New(),
		BookTitle:  "Dune",
		RentalDate: rental,
		ReturnDate: rental.Add(entity.LoanPeriod),
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQRCodeService(256, tt.level, "")
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestNewQRCodeService_FromConfig(t *testing.T) {
	svc, ok := NewQRCodeService(&config.Config{}).(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, defaultSize, svc.size)

	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H", BaseURL: "https://lib.example/loans/"}}
	svc, ok = NewQRCodeService(cfg).(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, 128, svc.size)
	assert.Equal(t, qrcode.Highest, svc.errorCorrectionLevel)
	assert.Equal(t, "https://lib.example/loans", svc.baseURL)
}

func TestQRCodeService_GenerateLoanSlip(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := newQRCodeService(size, "M", "https://lib.example/loans")

		png, err := svc.GenerateLoanSlip(newTestLoan())
		require.NoError(t, err)
		require.Greater(t, len(png), 8)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
	}

	_, err := newQRCodeService(256, "M", "").GenerateLoanSlip(nil)
	assert.Error(t, err)
}

func TestQRCodeService_ParseLoanSlip(t *testing.T) {
	svc := newQRCodeService(256, "M", "")
	loan := newTestLoan()

	payload, err := json.Marshal(LoanSlipData{
		LoanID:     loan.ID.String(),
		BookID:     loan.BookID.String(),
		BorrowerID: loan.BorrowerID.String(),
		Due:        loan.ReturnDate.Format(time.RFC3339),
		Type:       slipType,
	})
	require.NoError(t, err)

	got, err := svc.ParseLoanSlip(string(payload))
	require.NoError(t, err)
	assert.Equal(t, loan.ID, got)

	tests := []struct {
		name string
		data string
	}{
		{"not json", "plain text"},
		{"wrong type", `{"loan_id":"` + loan.ID.String() + `","type":"subscription"}`},
		{"bad id", `{"loan_id":"nope","type":"loan_slip"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := svc.ParseLoanSlip(tt.data)
			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, id)
		})
	}
}
