package service

// QRCodeService renders and parses the QR code shown on the order
// confirmation view.
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code carrying the order reference.
	GenerateOrderQR(orderID string) ([]byte, error)

	// ParseOrderQR extracts the order reference from scanned QR payload data.
	ParseOrderQR(qrData string) (string, error)
}
