package pdfgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arrebolmedia/video-editor/model"
)

func TestAddTextAccents(t *testing.T) {
	d := newDoc()
	startY := d.y

	d.addText("CONTRATO DE PRESTACIÓN DE SERVICIOS", 12, true, "center")
	d.addText(strings.Repeat("fotografía y videografía en Cuernavaca, Morelos, México ", 8), 10, false, "left")
	d.addText("DÉCIMA", 10, true, "right")

	if d.y <= startY {
		t.Error("Expected the baseline to advance")
	}

	data, err := d.output()
	if err != nil {
		t.Fatalf("output failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("Output does not start with PDF header")
	}
}

func TestAddJustifiedBoldAccents(t *testing.T) {
	d := newDoc()

	text := strings.Repeat("A QUIEN EN LO SUCESIVO SE LE DENOMINARÁ EL PROVEEDOR EN CONSIDERACIÓN DE LAS SIGUIENTES CLÁUSULAS ", 4)
	d.addJustifiedBold(text, []string{"DENOMINARÁ", "CLÁUSULAS"}, 10)

	if _, err := d.output(); err != nil {
		t.Fatalf("output failed: %v", err)
	}
}

func TestMeasureWordsBoldWidth(t *testing.T) {
	d := newDoc()

	regular := d.measureWords("Fotografía", nil, 10)
	bold := d.measureWords("Fotografía", map[string]bool{"Fotografía": true}, 10)

	if len(regular) != 1 || len(bold) != 1 {
		t.Fatalf("Expected one word each, got %d and %d", len(regular), len(bold))
	}
	if !bold[0].bold {
		t.Error("Expected the word to be marked bold")
	}
	if bold[0].width <= regular[0].width {
		t.Errorf("Bold width %v should exceed regular width %v", bold[0].width, regular[0].width)
	}
}

func TestBreakWordsRespectsWidth(t *testing.T) {
	d := newDoc()

	text := strings.Repeat("CINCUENTA Y NUEVE MIL PESOS ", 12)
	words := d.measureWords(text, map[string]bool{"CINCUENTA": true, "PESOS": true}, 10)

	d.setFont(10, "")
	spaceW := d.pdf.GetStringWidth(" ")
	lines := breakWords(words, spaceW, d.width)

	if len(lines) < 2 {
		t.Fatalf("Expected the text to wrap, got %d line(s)", len(lines))
	}
	for i, line := range lines {
		lineW := 0.0
		for j, w := range line {
			if j > 0 {
				lineW += spaceW
			}
			lineW += w.width
		}
		if lineW > d.width+0.01 {
			t.Errorf("Line %d width %v exceeds content width %v", i, lineW, d.width)
		}
	}
}

func TestAddDeliverablesAccents(t *testing.T) {
	d := newDoc()
	startY := d.y

	d.addDeliverables(model.StringList{
		"2 fotógrafos",
		"1 videógrafo",
		"500 fotografías editadas",
	})

	if d.y <= startY {
		t.Error("Expected the baseline to advance")
	}
	if _, err := d.output(); err != nil {
		t.Fatalf("output failed: %v", err)
	}
}
