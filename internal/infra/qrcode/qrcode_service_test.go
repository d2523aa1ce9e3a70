package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateVoucherQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateVoucherQR("TET2024")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseVoucherQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{VoucherCode: "TET2024", Type: "voucher"}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	code, err := service.ParseVoucherQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "TET2024", code)
}

func TestQRCodeService_ParseVoucherQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name   string
		qrData string
	}{
		{"not json", "garbage"},
		{"wrong type", `{"voucher_code":"TET2024","type":"subscription"}`},
		{"empty code", `{"voucher_code":"","type":"voucher"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseVoucherQR(tt.qrData)
			assert.Error(t, err)
		})
	}
}
