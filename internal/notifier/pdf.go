package notifier

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// analysisReportPDF renders the lab results of a completed analysis.
func analysisReportPDF(analysisID, entryID int64, acidity, humidity, yield string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 12, "OleoControl - Informe de analisis")
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Analisis: %d", analysisID))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Entrada: %d", entryID))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Fecha de emision: %s", time.Now().Format("02/01/2006")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Resultados")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range [][2]string{
		{"Acidez", acidity + " %"},
		{"Humedad", humidity + " %"},
		{"Rendimiento", yield + " %"},
	} {
		pdf.CellFormat(60, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, row[1], "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// settlementReceiptPDF renders the receipt of a resolved settlement.
func settlementReceiptPDF(settlementID int64, status, amount, price string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 12, "OleoControl - Recibo de liquidacion")
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Liquidacion: %d", settlementID))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Fecha de emision: %s", time.Now().Format("02/01/2006")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range [][2]string{
		{"Estado", status},
		{"Cantidad (kg)", amount},
		{"Precio (EUR/kg)", price},
	} {
		pdf.CellFormat(60, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, row[1], "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
