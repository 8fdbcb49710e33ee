package infra

// pdf.go — Certificado de adopción generated with go-pdf/fpdf.
// A5 landscape, bordered, with the pig's name centered and the adopter
// acknowledged below. Attached to the welcome email by the bienvenida worker.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// GenerarCertificadoAdopcion writes the certificate PDF to storagePath and
// returns the absolute path of the generated file.
func GenerarCertificadoAdopcion(nombreCerdito, clienteNombre, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	slug := strings.ToLower(strings.ReplaceAll(nombreCerdito, " ", "_"))
	fileName := fmt.Sprintf("certificado_%s_%d.pdf", slug, time.Now().Unix())
	filePath := filepath.Join(storagePath, fileName)

	// A5 landscape: 210mm × 148mm
	pdf := fpdf.New("L", "mm", "A5", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Decorative border ─────────────────────────────────────────────────────
	pdf.SetLineWidth(1.2)
	pdf.SetDrawColor(214, 137, 16) // dorado
	pdf.Rect(8, 8, pageW-16, pageH-16, "D")
	pdf.SetLineWidth(0.3)
	pdf.Rect(11, 11, pageW-22, pageH-22, "D")

	// ── Header ────────────────────────────────────────────────────────────────
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(120, 72, 30)
	pdf.CellFormat(contentW, 12, "Certificado de Adopción", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(contentW, 6, "Mini Pigs Costa Rica", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	// ── Body ──────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(contentW, 7, "Se certifica que", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(contentW, 11, clienteNombre, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(contentW, 7, "es desde hoy la familia adoptiva de", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(214, 137, 16)
	pdf.CellFormat(contentW, 14, nombreCerdito, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	fecha := time.Now().Format("02/01/2006")
	pdf.CellFormat(contentW, 5, "Fecha de entrega: "+fecha, "", 1, "C", false, 0, "")
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "¡Gracias por darle un hogar lleno de cariño!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
