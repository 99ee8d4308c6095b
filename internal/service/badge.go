package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/skip2/go-qrcode"
)

type Badge struct {
	ID       int
	Username string
	FullName string
	Position string
}

// badgeLink is the QR payload: the employee's admin detail route.
func badgeLink(baseUrl string, userID int) string {
	return fmt.Sprintf("%s/api/admin/users/%d", baseUrl, userID)
}

// BuildBadgeSheet renders one QR badge per employee into a pdf and returns
// its path. The QR payload is the profile link under baseUrl so the badge can
// be scanned at the front desk.
func BuildBadgeSheet(badges []Badge, baseUrl string) (string, error) {
	qrDir := filepath.Join(baseDir, "qrcodes")
	if err := os.MkdirAll(qrDir, os.ModePerm); err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")

	const (
		badgeWidth  = 60.0
		badgeHeight = 75.0
		perRow      = 3
		marginX     = 10.0
		marginY     = 10.0
	)

	for i, badge := range badges {
		if i%(perRow*3) == 0 {
			pdf.AddPage()
		}

		qrFile := filepath.Join(qrDir, fmt.Sprintf("user-%d.png", badge.ID))
		if err := qrcode.WriteFile(badgeLink(baseUrl, badge.ID), qrcode.Medium, 256, qrFile); err != nil {
			return "", fmt.Errorf("generating qr code: %w", err)
		}

		pos := i % (perRow * 3)
		x := marginX + float64(pos%perRow)*badgeWidth
		y := marginY + float64(pos/perRow)*badgeHeight

		pdf.Image(qrFile, x+5, y, 50, 50, false, "", 0, "")
		pdf.SetFont("Arial", "B", 11)
		pdf.SetXY(x, y+52)
		pdf.CellFormat(badgeWidth, 6, badge.FullName, "", 0, "C", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.SetXY(x, y+58)
		pdf.CellFormat(badgeWidth, 5, badge.Position, "", 0, "C", false, 0, "")
		pdf.SetXY(x, y+63)
		pdf.CellFormat(badgeWidth, 5, badge.Username, "", 0, "C", false, 0, "")
	}

	dir := filepath.Join(baseDir, "exports")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	fileName := filepath.Join(dir, fmt.Sprintf("badges-%s.pdf", time.Now().Format("20060102-150405")))

	if err := pdf.OutputFileAndClose(fileName); err != nil {
		return "", fmt.Errorf("saving badge sheet: %w", err)
	}

	return fileName, nil
}
