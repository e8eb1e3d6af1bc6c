package service

// ParcelLabel is the payload encoded in a parcel's QR code.
type ParcelLabel struct {
	ParcelID       string
	TrackingNumber string
}

// QRCodeService defines the interface for parcel label QR codes
type QRCodeService interface {
	// GenerateParcelQR renders a PNG QR code for the label
	GenerateParcelQR(label ParcelLabel) ([]byte, error)

	// ParseParcelQR decodes scanned QR text back into a label
	ParseParcelQR(qrData string) (*ParcelLabel, error)
}
