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
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(256, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestGenerateOrderQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	pngBytes, err := svc.GenerateOrderQR("ORD-1234")
	require.NoError(t, err)
	assert.NotEmpty(t, pngBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
}

func TestGenerateOrderQR_EmptyID(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GenerateOrderQR("  ")
	assert.Error(t, err)
}

func TestParseOrderQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{OrderID: "ORD-1234", Type: "order"})
	require.NoError(t, err)

	orderID, err := svc.ParseOrderQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "ORD-1234", orderID)
}

func TestParseOrderQR_InvalidPayloads(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "not-json"},
		{"wrong type", `{"order_id":"ORD-1234","type":"subscription"}`},
		{"missing order id", `{"type":"order"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseOrderQR(tt.payload)
			assert.Error(t, err)
		})
	}
}
