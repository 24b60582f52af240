// Package documents renders priced quotations into customer-facing documents.
package documents

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"vehicle_quotation/internal/domain/entities"
	"vehicle_quotation/internal/domain/money"
	"vehicle_quotation/internal/usecase/interfaces"
)

const (
	pdfContentType = "application/pdf"
	pdfExtension   = "pdf"

	fontFamily  = "Helvetica"
	lineHeight  = 7.0
	labelWidth  = 130.0
	amountWidth = 50.0
)

// PDFRenderer lays out a quotation on a single A4 page (more when the option list is
// long). Amounts are rounded to two decimals here and nowhere else.
type PDFRenderer struct {
	company string
	now     func() time.Time
}

var _ interfaces.IDocumentRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer(company string, now func() time.Time) *PDFRenderer {
	if now == nil {
		now = time.Now
	}
	return &PDFRenderer{company: company, now: now}
}

func (r *PDFRenderer) ContentType() string { return pdfContentType }

func (r *PDFRenderer) Extension() string { return pdfExtension }

func (r *PDFRenderer) Render(ctx context.Context, p entities.PricedQuotation) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := p.Quotation
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	issued := r.now()

	pdf.SetTitle("Preventivo "+q.ID, true)
	pdf.SetCreator(r.company, true)
	pdf.SetCreationDate(issued)
	pdf.SetMargins(15, 15, 15)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("%s - pagina %d", r.company, pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 18)
	pdf.CellFormat(0, 10, tr("Preventivo"), "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(0, 6, tr("N. "+q.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Data: "+issued.Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	section(pdf, tr, "Cliente")
	if c := q.Customer; c != nil {
		row(pdf, tr, c.FullName(), "")
		if c.Email != "" {
			row(pdf, tr, c.Email, "")
		}
		if c.Phone != "" {
			row(pdf, tr, c.Phone, "")
		}
	} else {
		row(pdf, tr, "Cliente", "")
	}

	if v := q.Vehicle; v != nil {
		section(pdf, tr, "Veicolo")
		row(pdf, tr, v.Brand+" "+v.Model, formatAmount(v.BasePrice))
		if vr := q.Variation; vr != nil {
			row(pdf, tr, variationLine(vr), "")
		}
	}

	if len(q.Options) > 0 {
		section(pdf, tr, "Optionals")
		for _, o := range q.Options {
			price := "-"
			if o.Price != nil {
				price = formatAmount(*o.Price)
			}
			row(pdf, tr, o.NameIt, price)
		}
	}

	if len(p.Adjustments) > 0 {
		section(pdf, tr, "Variazioni di prezzo")
		for _, a := range p.Adjustments {
			row(pdf, tr, a.Label, formatAmount(a.Amount))
		}
	}

	pdf.Ln(4)
	pdf.SetFont(fontFamily, "B", 13)
	pdf.CellFormat(labelWidth, 9, tr("Totale"), "T", 0, "L", false, 0, "")
	pdf.CellFormat(amountWidth, 9, tr(formatAmount(q.FinalPrice)), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.Ln(2)
	pdf.SetFont(fontFamily, "B", 12)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(labelWidth+amountWidth, 8, tr(title), "", 1, "L", true, 0, "")
	pdf.SetFont(fontFamily, "", 10)
}

func row(pdf *fpdf.Fpdf, tr func(string) string, label, amount string) {
	pdf.CellFormat(labelWidth, lineHeight, tr(label), "", 0, "L", false, 0, "")
	pdf.CellFormat(amountWidth, lineHeight, tr(amount), "", 1, "R", false, 0, "")
}

func variationLine(v *entities.VehicleVariation) string {
	line := strconv.Itoa(v.EngineDisplacementCC) + " cc"
	if v.FuelSystemIt != "" {
		line += ", " + v.FuelSystemIt
	}
	if v.RegistrationYear > 0 {
		line += fmt.Sprintf(", immatricolazione %02d/%d", max(v.RegistrationMonth, 1), v.RegistrationYear)
	}
	return line
}

// formatAmount renders "€ 1234.50" or "-€ 12.00".
func formatAmount(m money.Money) string {
	if m.IsNegative() {
		return "-€ " + m.Neg().StringFixed(2)
	}
	return "€ " + m.StringFixed(2)
}
