package pdfgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/arrebolmedia/video-editor/model"
)

// SecondPaymentDue resolves when the balance is due: the explicit date on the
// contract when set, otherwise fifteen days before the wedding. Returns
// "a definir" when neither date parses.
func SecondPaymentDue(c *model.Contrato) string {
	if c.SecondPaymentDate != "" {
		return FormatSpanishDate(c.SecondPaymentDate)
	}
	t, err := time.Parse("2006-01-02", c.WeddingDate)
	if err != nil {
		return "a definir"
	}
	return formatSpanishTime(t.AddDate(0, 0, -15))
}

// amountWithWords renders "$59,000.00 (CINCUENTA Y NUEVE MIL PESOS 00/100 M.N.)".
func amountWithWords(amount float64) (figure, words string) {
	return FormatMoney(amount), fmt.Sprintf("%s PESOS 00/100 M.N.", NumberToWords(int(amount)))
}

// GenerateContractPDF renders the full service contract.
func GenerateContractPDF(c *model.Contrato) ([]byte, error) {
	d := newDoc()

	clientUpper := strings.ToUpper(c.ClientName)
	totalFigure, totalWords := amountWithWords(c.TotalAmount)
	depositFigure, depositWords := amountWithWords(c.DepositAmount)
	balanceFigure, balanceWords := amountWithWords(c.BalanceAmount())

	d.addText("CONTRATO DE PRESTACIÓN DE SERVICIOS", 12, true, "center")
	d.addSpace(8)

	d.addJustifiedBold(
		fmt.Sprintf("QUE CELEBRAN, POR UNA PARTE, %s, REPRESENTADA POR %s EN ESTE DOCUMENTO, A QUIEN EN LO SUCESIVO SE LE DENOMINARÁ EL PROVEEDOR, Y POR %s, A QUIEN EN LO SUCESIVO SE LE DENOMINARÁ EL CLIENTE EN CONSIDERACIÓN DE LAS SIGUIENTES:",
			providerCompany, providerName, clientUpper),
		[]string{providerCompany, providerName, clientUpper},
		10)
	d.addSpace(8)

	d.addText("DECLARACIONES", 11, true, "center")
	d.addSpace(5)

	d.addText("A) Declara EL PROVEEDOR:", 10, true, "left")
	d.addSpace(3)
	d.addJustifiedBold(
		fmt.Sprintf("1. Llamarse %s, quien se identifica con credencial de elector, ser de nacionalidad mexicana con domicilio en %s. Manifiesta ser persona física y representante legal de la marca %s.",
			providerName, providerAddress, providerCompany),
		nil, 10)
	d.addSpace(3)
	d.addJustifiedBold(
		"2. Que cuenta con elementos propios, suficientes y capacidad profesional necesaria para cumplir las actividades profesionales que se le encomienden, por lo que está en condiciones de obligarse en este contrato para prestar sus servicios de fotografía a EL CLIENTE.",
		nil, 10)
	d.addSpace(5)

	d.addText("B) Declara EL CLIENTE:", 10, true, "left")
	d.addSpace(3)
	d.addJustifiedBold(
		fmt.Sprintf("1. Ser una persona física quien se identifica bajo el nombre de %s, que se identifica con credencial de elector, y manifiesta tener domicilio en %s. Desea hacer uso de los servicios de EL PROVEEDOR para desempeñar la actividad de Fotografía y Video Profesional en el evento social a celebrarse el día %s en %s, ubicada en %s. Considerando EL PROVEEDOR y EL CLIENTE en mutuo acuerdo las siguientes:",
			clientUpper, c.ClientAddress, FormatSpanishDate(c.WeddingDate), c.Venue, c.VenueAddress),
		[]string{c.Venue},
		10)
	d.addSpace(8)

	d.checkPageBreak(40)

	d.addText("CLÁUSULAS", 11, true, "center")
	d.addSpace(5)

	d.addJustifiedBold(
		"PRIMERA. - Sobre las características del servicio: en virtud del presente contrato, EL PROVEEDOR se obliga a prestar a EL CLIENTE el siguiente servicio:",
		nil, 10)
	d.addSpace(3)
	d.addJustifiedBold("Paquete de Fotografía y Videografía con las siguientes características:", nil, 10)
	d.addSpace(3)

	d.addDeliverables(c.Deliverables)
	d.addSpace(5)

	d.checkPageBreak(30)

	d.addJustifiedBold(
		"PRIMERA BIS. - EL CLIENTE autoriza a EL PROVEEDOR a subcontratar al personal o equipo necesario para cumplir con las obligaciones presentadas en la cláusula anterior.",
		nil, 10)
	d.addSpace(5)
	d.addJustifiedBold(
		"SEGUNDA. - EL CLIENTE autoriza a EL PROVEEDOR a utilizar el material con fines de mercadotecnia o publicidad. El material no podrá ser vendido a alguien que no sea EL CLIENTE.",
		nil, 10)
	d.addSpace(5)
	d.addJustifiedBold(
		"SEGUNDA BIS. - El tiempo de entrega del material en formato digital se estima en cuatro y seis semanas.",
		nil, 10)
	d.addSpace(5)

	d.checkPageBreak(30)

	d.addJustifiedBold(
		fmt.Sprintf("TERCERA. - Sobre el costo acordado: el valor convenido por EL PROVEEDOR y EL CLIENTE es de %s (%s). En caso de requerir factura los precios son más IVA.",
			totalFigure, totalWords),
		[]string{totalFigure, totalWords},
		10)
	d.addSpace(5)

	d.addJustifiedBold(
		"CUARTA. - Sobre las formas de pago: EL CLIENTE se compromete a pagar a EL PROVEEDOR la cantidad total de la siguiente manera:",
		nil, 10)
	d.addSpace(3)
	d.addJustifiedBold(
		fmt.Sprintf("PRIMER PAGO: Por la cantidad de %s (%s), a realizarse a la firma del presente contrato.",
			depositFigure, depositWords),
		[]string{depositFigure, depositWords},
		10)
	d.addSpace(3)
	d.addJustifiedBold(
		fmt.Sprintf("SEGUNDO PAGO: Por la cantidad de %s (%s), a realizarse el día %s.",
			balanceFigure, balanceWords, SecondPaymentDue(c)),
		[]string{balanceFigure, balanceWords},
		10)
	d.addSpace(5)

	d.checkPageBreak(40)

	d.addJustifiedBold(
		"QUINTA. - Sobre los métodos de pago: EL PROVEEDOR declara su deseo de recibir los pagos en la siguiente cuenta bancaria:",
		nil, 10)
	d.addSpace(3)
	d.addText("BANCO: "+bankName, 10, false, "center")
	d.addText("TITULAR: "+providerName, 10, false, "center")
	d.addText("NÚMERO DE CUENTA: "+bankAccount, 10, false, "center")
	d.addText("CLABE: "+bankCLABE, 10, false, "center")
	d.addSpace(3)
	d.addJustifiedBold(
		"De igual forma, EL CLIENTE podrá acordar con EL PROVEEDOR otro método de pago bajo mutuo acuerdo.",
		nil, 10)
	d.addSpace(5)

	d.addJustifiedBold(
		"SEXTA. - Se estipula que la vigencia del presente contrato será por el periodo que comprende a partir de la fecha en que EL CLIENTE realice el primer pago y hasta el día de la entrega de los productos que están contenidos en la CLÁUSULA PRIMERA.",
		nil, 10)
	d.addSpace(5)

	d.checkPageBreak(30)

	d.addJustifiedBold(
		"SÉPTIMA. - En virtud de ser un contrato por tiempo determinado conforme a la cláusula que antecede, se estipula que en caso de que, si EL CLIENTE decide cancelar la prestación de servicios para con EL PROVEEDOR, motivo del presente instrumento, deberá informar su decisión a más tardar un mes antes de la fecha en que se prestará el servicio para poder recibir el 50% de los pagos realizados, de lo contrario no podrá hacerse devolución alguna del mismo.",
		nil, 10)
	d.addSpace(5)

	d.checkPageBreak(30)

	d.addJustifiedBold(
		"OCTAVA. - En caso de que EL PROVEEDOR incumpla con la obligación de prestar los servicios convenidos en el presente instrumento, EL CLIENTE tendrá derecho a rescindir el presente contrato, recibiendo la totalidad de los pagos efectuados a EL PROVEEDOR, dejando en claro que la única razón por la cual puede incumplir es en caso de accidente, muerte o disposición sanitaria; en caso de esta última se podrá reagendar la prestación del servicio, sin penalización alguna, sujeto a disponibilidad por parte de EL PROVEEDOR.",
		nil, 10)
	d.addSpace(5)
	d.addJustifiedBold(
		"OCTAVA BIS. - EL PROVEEDOR hace la petición especial a EL CLIENTE para no contratar iluminación de tipo láser durante el evento, debido a que estos pueden dañar los sensores del equipo de fotografía y video, impidiendo el cumplimiento adecuado de la captura del evento.",
		nil, 10)
	d.addSpace(5)

	d.checkPageBreak(30)

	d.addJustifiedBold(
		"NOVENA. - En caso de reagendar, se respetará el precio del servicio hasta por un año posterior a la fecha original del evento, si se reagenda para una fecha transcurrido dicho lapso, el precio incrementará un 10%.",
		nil, 10)
	d.addSpace(5)
	d.addJustifiedBold(
		fmt.Sprintf("DÉCIMA. - EL CLIENTE autoriza media hora para ingesta de alimentos y proveerá un servicio de comida para cada integrante asociado a EL PROVEEDOR (%d personas).", c.MealsCount),
		nil, 10)
	d.addSpace(5)

	d.checkPageBreak(40)

	d.addJustifiedBold(
		"ONCEAVA. - Ambas partes contratantes declaran conformidad respecto a las obligaciones y derechos que mutuamente les corresponde en sus respectivas calidades de EL CLIENTE y EL PROVEEDOR, y que ante cualquier situación que no hayan sido motivo de cláusula expresa en el presente contrato, se podrá añadir en un anexo al presente previo convenio entre las partes.",
		nil, 10)
	d.addSpace(5)
	d.addJustifiedBold(
		"DOCEAVA. - Jurisdicción y leyes en caso de controversia: las leyes aplicables y tribunales de la ciudad de Cuernavaca, Morelos.",
		nil, 10)
	d.addSpace(8)

	d.checkPageBreak(60)

	d.addJustifiedBold(
		fmt.Sprintf("Leído por ambas partes este documento y conocedores de las obligaciones que contraen, firman en versión digital o impresa en Cuernavaca, Morelos a %s.",
			formatSpanishTime(time.Now())),
		nil, 10)
	d.addSpace(35)

	// Signature lines
	d.hline(d.margin, d.margin+70)
	d.hline(d.pageW-d.margin-70, d.pageW-d.margin)
	d.addSpace(12)
	d.textCenteredAt(d.margin+35, titleCase(c.ClientName), 10, false)
	d.textCenteredAt(d.pageW-d.margin-35, titleCase(providerName), 10, false)
	d.addSpace(12)
	d.textCenteredAt(d.margin+35, "EL CLIENTE", 10, false)
	d.textCenteredAt(d.pageW-d.margin-35, "EL PROVEEDOR", 10, false)

	return d.output()
}

// addDeliverables lays out the itemized list in two columns, splitting at the
// midpoint.
func (d *doc) addDeliverables(items model.StringList) {
	if len(items) == 0 {
		return
	}
	colWidth := (d.width - 15) / 2
	leftX := d.margin
	rightX := d.margin + colWidth + 15
	mid := (len(items) + 1) / 2
	startY := d.y

	d.setFont(10, "")
	renderColumn := func(x float64, items model.StringList) float64 {
		y := startY
		for _, item := range items {
			lines := d.pdf.SplitText("- "+item, colWidth)
			for _, line := range lines {
				d.pdf.Text(x, y, d.tr(line))
				y += 5
			}
		}
		return y
	}

	leftY := renderColumn(leftX, items[:mid])
	rightY := renderColumn(rightX, items[mid:])
	if rightY > leftY {
		d.y = rightY
	} else {
		d.y = leftY
	}
}

func titleCase(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
