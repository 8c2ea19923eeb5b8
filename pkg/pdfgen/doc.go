// Package pdfgen lays out the studio's legal documents (service contract and
// payment receipt) on US Letter pages with justified Spanish boilerplate.
package pdfgen

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Fixed provider identity printed on every document.
const (
	providerName    = "ANTHONY CAZARES"
	providerCompany = "ARREBOL WEDDINGS"
	providerRFC     = "CAOA940915H99"
	providerCity    = "Cuernavaca, Morelos, México"
	providerAddress = "Paseo de las Rosas #100, Ampliación Bugambilias, CP 62577, Jiutepec, Morelos"

	bankName    = "BANORTE"
	bankAccount = "0298412002"
	bankCLABE   = "072540002984120026"
)

// 1cm margin, in points.
const pageMargin = 28.35

// doc wraps a letter-sized page with a moving baseline, mirroring how the
// boilerplate is written top to bottom with explicit page-break checks.
type doc struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	margin float64
	width  float64 // content width between margins
	pageW  float64
	pageH  float64
	y      float64
}

func newDoc() *doc {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	w, h := pdf.GetPageSize()
	return &doc{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		margin: pageMargin,
		width:  w - 2*pageMargin,
		pageW:  w,
		pageH:  h,
		y:      pageMargin,
	}
}

func (d *doc) setFont(size float64, style string) {
	d.pdf.SetFont("Times", style, size)
}

func (d *doc) addSpace(pts float64) {
	d.y += pts
}

// checkPageBreak starts a new page when the remaining space is smaller than
// the next block needs.
func (d *doc) checkPageBreak(needed float64) {
	if d.y > d.pageH-d.margin-needed {
		d.pdf.AddPage()
		d.y = d.margin
	}
}

// addText wraps the text to the content width and advances the baseline by
// half the font size per line, like the source layout it reproduces.
func (d *doc) addText(text string, size float64, bold bool, align string) {
	style := ""
	if bold {
		style = "B"
	}
	d.setFont(size, style)

	// SplitText decodes UTF-8; the cp1252 translation happens per line at
	// draw time, after the break points are chosen.
	lineHeight := size * 0.5
	lines := d.pdf.SplitText(text, d.width)
	for _, line := range lines {
		t := d.tr(line)
		switch align {
		case "center":
			d.pdf.Text(d.pageW/2-d.pdf.GetStringWidth(t)/2, d.y, t)
		case "right":
			d.pdf.Text(d.pageW-d.margin-d.pdf.GetStringWidth(t), d.y, t)
		default:
			d.pdf.Text(d.margin, d.y, t)
		}
		d.y += lineHeight
	}
}

// textAt draws a single line at an absolute x without moving the baseline.
func (d *doc) textAt(x float64, text string, size float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	d.setFont(size, style)
	d.pdf.Text(x, d.y, d.tr(text))
}

func (d *doc) textCenteredAt(x float64, text string, size float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	d.setFont(size, style)
	t := d.tr(text)
	d.pdf.Text(x-d.pdf.GetStringWidth(t)/2, d.y, t)
}

func (d *doc) hline(x1, x2 float64) {
	d.pdf.SetLineWidth(0.5)
	d.pdf.Line(x1, d.y, x2, d.y)
}

// addJustifiedBold renders a paragraph with true justification, measuring
// each word and redistributing the leftover width across the gaps. Words
// appearing in any of the bold phrases render in bold; matching ignores
// punctuation so a phrase like "$12,000.00" bolds the printed token.
func (d *doc) addJustifiedBold(text string, boldPhrases []string, size float64) {
	lineHeight := size * 0.5

	boldWords := map[string]bool{}
	for _, phrase := range boldPhrases {
		for _, w := range strings.Fields(phrase) {
			if clean := cleanWord(w); clean != "" {
				boldWords[clean] = true
			}
		}
	}

	words := d.measureWords(text, boldWords, size)
	if len(words) == 0 {
		d.y += lineHeight
		return
	}

	d.setFont(size, "")
	spaceW := d.pdf.GetStringWidth(" ")
	lines := breakWords(words, spaceW, d.width)

	for li, line := range lines {
		lastLine := li == len(lines)-1

		total := 0.0
		for _, w := range line {
			total += w.width
		}
		gap := spaceW
		if gaps := len(line) - 1; gaps > 0 && !lastLine {
			gap = (d.width - total) / float64(gaps)
		}

		x := d.margin
		for _, w := range line {
			if w.bold {
				d.setFont(size, "B")
			} else {
				d.setFont(size, "")
			}
			d.pdf.Text(x, d.y, w.text)
			x += w.width + gap
		}
		d.y += lineHeight
	}
}

type styledWord struct {
	text  string // cp1252-translated, ready to draw
	width float64
	bold  bool
}

// measureWords translates and measures each word in its own style.
func (d *doc) measureWords(text string, boldWords map[string]bool, size float64) []styledWord {
	var words []styledWord
	for _, w := range strings.Fields(text) {
		bold := boldWords[cleanWord(w)]
		if bold {
			d.setFont(size, "B")
		} else {
			d.setFont(size, "")
		}
		t := d.tr(w)
		words = append(words, styledWord{text: t, width: d.pdf.GetStringWidth(t), bold: bold})
	}
	return words
}

// breakWords wraps on each word's own style width so a bold span cannot push
// past the right margin.
func breakWords(words []styledWord, spaceW, width float64) [][]styledWord {
	var lines [][]styledWord
	var line []styledWord
	lineW := 0.0
	for _, w := range words {
		if len(line) > 0 && lineW+spaceW+w.width > width {
			lines = append(lines, line)
			line = nil
			lineW = 0
		}
		if len(line) > 0 {
			lineW += spaceW
		}
		line = append(line, w)
		lineW += w.width
	}
	return append(lines, line)
}

func cleanWord(w string) string {
	return strings.Trim(w, ",.:;()$")
}

func (d *doc) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var spanishMonths = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatSpanishDate renders an ISO date as "2 de enero de 2026". Unparseable
// input is returned as-is.
func FormatSpanishDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return formatSpanishTime(t)
}

func formatSpanishTime(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// FormatMoney renders an amount as "$59,000.00".
func FormatMoney(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	whole := int64(amount)
	cents := int64(amount*100+0.5) - whole*100
	if cents >= 100 {
		whole++
		cents -= 100
	}

	digits := fmt.Sprintf("%d", whole)
	var grouped strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, grouped.String(), cents)
}
