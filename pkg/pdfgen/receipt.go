package pdfgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/arrebolmedia/video-editor/model"
)

// ReceiptAmountLine is the written-out amount printed under the figure,
// e.g. "(ONCE MIL OCHOCIENTOS PESOS 00/100 M.N.)". Cents are always 00/100;
// amounts are charged in whole pesos.
func ReceiptAmountLine(amount float64) string {
	return fmt.Sprintf("(%s PESOS 00/100 M.N.)", NumberToWords(int(amount)))
}

// GenerateReceiptPDF renders a payment receipt for the given record.
func GenerateReceiptPDF(r *model.Recibo) ([]byte, error) {
	d := newDoc()

	d.addText("RECIBO DE PAGO", 18, true, "center")
	d.addSpace(15)

	d.addText(providerCompany, 12, true, "center")
	d.addSpace(8)
	d.addText(providerName, 10, false, "center")
	d.addSpace(6)
	d.addText(providerCity, 10, false, "center")
	d.addSpace(15)

	d.hline(d.margin, d.pageW-d.margin)
	d.addSpace(10)

	leftCol := d.margin
	rightCol := d.pageW/2 + 10

	d.textAt(leftCol, "Recibo No.:", 10, true)
	d.textAt(leftCol+60, r.ReceiptNumber, 10, false)
	d.textAt(rightCol, "Fecha:", 10, true)
	d.textAt(rightCol+45, FormatSpanishDate(r.PaymentDate), 10, false)
	d.addSpace(14)

	d.textAt(leftCol, "Cliente:", 10, true)
	d.textAt(leftCol+60, r.ClientName, 10, false)
	d.addSpace(14)

	if r.Venue != "" {
		d.textAt(leftCol, "Venue:", 10, true)
		d.textAt(leftCol+60, r.Venue, 10, false)
		d.addSpace(14)
	}
	if r.EventDate != "" {
		d.textAt(leftCol, "Fecha del Evento:", 10, true)
		d.textAt(leftCol+90, FormatSpanishDate(r.EventDate), 10, false)
		d.addSpace(14)
	}
	d.addSpace(7)

	d.hline(d.margin, d.pageW-d.margin)
	d.addSpace(10)

	d.textAt(leftCol, "Concepto:", 10, true)
	d.textAt(leftCol+60, r.Concept, 10, false)
	d.addSpace(14)

	d.textAt(leftCol, "Método de Pago:", 10, true)
	d.textAt(leftCol+90, r.PaymentMethod, 10, false)
	d.addSpace(20)

	d.hline(d.margin, d.pageW-d.margin)
	d.addSpace(14)

	d.textAt(leftCol, "MONTO RECIBIDO:", 14, true)
	amount := FormatMoney(r.Amount)
	d.setFont(14, "B")
	d.pdf.Text(d.pageW-d.margin-d.pdf.GetStringWidth(amount), d.y, amount)
	d.addSpace(14)

	d.textCenteredAt(d.pageW/2, ReceiptAmountLine(r.Amount), 10, false)
	d.addSpace(20)

	if strings.TrimSpace(r.Notes) != "" {
		d.textAt(leftCol, "Notas:", 10, true)
		d.addSpace(12)
		d.addText(r.Notes, 10, false, "left")
		d.addSpace(10)
	}

	// Signature line
	d.addSpace(25)
	d.hline(d.margin+50, d.pageW-d.margin-50)
	d.addSpace(12)
	d.textCenteredAt(d.pageW/2, "Anthony Cazares", 10, false)

	// Footer pinned near the bottom
	d.y = d.pageH - 30
	d.textCenteredAt(d.pageW/2, "Este recibo es un comprobante de pago. Consérvelo para cualquier aclaración.", 8, false)
	d.addSpace(10)
	d.textCenteredAt(d.pageW/2, "Generado el "+formatSpanishTime(time.Now()), 8, false)

	return d.output()
}
