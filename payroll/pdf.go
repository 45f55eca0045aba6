package payroll

import (
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/warp/backoffice/roster"
)

// =============================================================================
// PDF REGISTER - Printable monthly payroll register
// =============================================================================

// WriteRegisterPDF renders the month's sheet as an A4 register, one row per
// line, and writes the PDF to w. Employee names come from the directory;
// lines whose employee is unknown print the raw ID.
func WriteRegisterPDF(w io.Writer, month string, sheet []Line, employees []roster.Employee) error {
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; names carry accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Registro de nominas")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(40, 8, "Mes: "+month)
	pdf.Ln(12)

	// Table header.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 8, "Empleado", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Bruto", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Deducciones", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Coeficiente", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	sum := decimal.Zero
	for _, l := range sheet {
		name := names[l.EmployeeID]
		if name == "" {
			name = l.EmployeeID
		}
		deductions := l.GrossSalary.
			Add(l.HolidayHoursPay).
			Add(l.OvertimeHoursPay).
			Sub(l.Total)
		pdf.CellFormat(60, 8, tr(name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, l.GrossSalary.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, deductions.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, l.OverheadCoefficient.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, l.Total.StringFixed(2), "1", 1, "R", false, 0, "")
		sum = sum.Add(l.Total)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(150, 8, "Total mes", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, sum.StringFixed(2), "1", 1, "R", false, 0, "")

	return pdf.Output(w)
}
