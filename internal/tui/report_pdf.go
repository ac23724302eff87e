package tui

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/taskloot/internal/database"
	"github.com/akyairhashvil/taskloot/internal/models"
)

// WriteHistoryPDF renders the grant history to a PDF file.
func WriteHistoryPDF(path string, grants []models.Grant, top []database.RewardCount, total int) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Reward History")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total rewards granted: %d", total))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Recent grants")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(grants) == 0 {
		pdf.Cell(0, 8, "  - Nothing granted yet.")
		pdf.Ln(8)
	}
	for _, g := range grants {
		line := fmt.Sprintf("%s  [%s] %s", g.GrantedAt.Format("2006-01-02 15:04"), g.Tier, g.Reward)
		if g.Task != "" {
			line += fmt.Sprintf(" (for: %s)", g.Task)
		}
		pdf.MultiCell(0, 8, line, "", "", false)
	}

	if len(top) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Most granted")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		for _, rc := range top {
			pdf.Cell(0, 8, fmt.Sprintf("  %dx %s", rc.Count, rc.Reward))
			pdf.Ln(6)
		}
	}

	return pdf.OutputFileAndClose(path)
}
