package service

// QRCodeService renders voucher codes as scannable images and reads
// them back.
type QRCodeService interface {
	// GenerateVoucherQR renders the voucher code as a PNG image.
	GenerateVoucherQR(code string) ([]byte, error)

	// ParseVoucherQR extracts the voucher code from scanned QR data.
	ParseVoucherQR(qrData string) (string, error)
}
