// Package qrcode renders voucher codes as scannable PNG images.
package qrcode

import (
	"encoding/json"
	"fmt"

	"salepoint/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code payload.
type QRCodeData struct {
	VoucherCode string `json:"voucher_code"`
	Type        string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateVoucherQR renders the voucher code as a PNG image.
func (s *qrcodeService) GenerateVoucherQR(code string) ([]byte, error) {
	data := QRCodeData{
		VoucherCode: code,
		Type:        "voucher",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseVoucherQR extracts the voucher code from scanned QR data.
func (s *qrcodeService) ParseVoucherQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "voucher" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.VoucherCode == "" {
		return "", fmt.Errorf("QR code carries no voucher code")
	}

	return data.VoucherCode, nil
}
