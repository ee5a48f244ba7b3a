package service

import (
	"fmt"
	"image/color"

	"volunteer-hub-backend/internal/repository"

	qrcode "github.com/skip2/go-qrcode"
)

// Default rendering options for join-code QR images.
const (
	DefaultQRSize = 256
	maxQRSize     = 1024
)

// QRService renders a group's join URL as a scannable PNG. The dark and
// light colors come from the organization's brand settings.
type QRService struct {
	orgRepo repository.OrganizationRepositoryInterface
}

// NewQRService creates a new QR service
func NewQRService(orgRepo repository.OrganizationRepositoryInterface) *QRService {
	return &QRService{orgRepo: orgRepo}
}

// Encode renders the given join URL as a PNG of the requested pixel size
func (s *QRService) Encode(joinURL string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	if size > maxQRSize {
		size = maxQRSize
	}

	q, err := qrcode.New(joinURL, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to build QR code: %w", err)
	}

	org, err := s.orgRepo.Get()
	if err != nil {
		return nil, err
	}
	if dark, ok := parseHexColor(org.PrimaryColor); ok {
		q.ForegroundColor = dark
	}
	q.BackgroundColor = color.White

	png, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}
	return png, nil
}

// parseHexColor parses a #RRGGBB color. Anything else falls back to the
// encoder's default.
func parseHexColor(s string) (color.Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return nil, false
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, false
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}
