// Package qrcode renders parcel label QR codes.
package qrcode

import (
	"encoding/json"
	"strings"

	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	labelType   = "parcel"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// labelPayload is the JSON encoded into a parcel label.
type labelPayload struct {
	Type           string `json:"type"`
	ParcelID       string `json:"parcel_id"`
	TrackingNumber string `json:"tracking_number"`
}

// NewQRCodeService creates a new QR code service instance.
// errorCorrectionLevel accepts L/M/Q/H or low/medium/high/highest.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateParcelQR renders the label as a PNG.
func (s *qrcodeService) GenerateParcelQR(label service.ParcelLabel) ([]byte, error) {
	if label.ParcelID == "" || label.TrackingNumber == "" {
		return nil, errors.New("parcel id and tracking number are required")
	}

	data, err := json.Marshal(labelPayload{
		Type:           labelType,
		ParcelID:       label.ParcelID,
		TrackingNumber: label.TrackingNumber,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(data), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseParcelQR reads the text scanned from a label. A bare tracking number is accepted as well.
func (s *qrcodeService) ParseParcelQR(qrData string) (*service.ParcelLabel, error) {
	qrData = strings.TrimSpace(qrData)
	if entity.IsTrackingNumber(strings.ToUpper(qrData)) {
		return &service.ParcelLabel{TrackingNumber: strings.ToUpper(qrData)}, nil
	}

	var payload labelPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}
	if payload.Type != labelType {
		return nil, errors.Errorf("invalid QR code type: %s", payload.Type)
	}
	if payload.ParcelID == "" {
		return nil, errors.New("QR code has no parcel id")
	}

	return &service.ParcelLabel{ParcelID: payload.ParcelID, TrackingNumber: payload.TrackingNumber}, nil
}
