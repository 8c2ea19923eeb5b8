package pdfgen

import (
	"bytes"
	"testing"

	"github.com/arrebolmedia/video-editor/model"
)

func TestReceiptAmountLine(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{11800, "(ONCE MIL OCHOCIENTOS PESOS 00/100 M.N.)"},
		{59000, "(CINCUENTA Y NUEVE MIL PESOS 00/100 M.N.)"},
		{100, "(CIEN PESOS 00/100 M.N.)"},
	}

	for _, tt := range tests {
		if got := ReceiptAmountLine(tt.amount); got != tt.want {
			t.Errorf("ReceiptAmountLine(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestGenerateReceiptPDF(t *testing.T) {
	recibo := &model.Recibo{
		ReceiptNumber: "REC-2026-001",
		ClientName:    "Ana García",
		Amount:        11800,
		PaymentMethod: "Transferencia",
		PaymentDate:   "2026-03-15",
		Concept:       "Anticipo de boda",
		Venue:         "Hacienda San Gabriel",
		EventDate:     "2026-06-20",
		Notes:         "Pago recibido completo",
	}

	data, err := GenerateReceiptPDF(recibo)
	if err != nil {
		t.Fatalf("GenerateReceiptPDF failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Expected non-empty PDF output")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("Output does not start with PDF header: %q", data[:8])
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{59000, "$59,000.00"},
		{11800.5, "$11,800.50"},
		{1234567.89, "$1,234,567.89"},
		{999, "$999.00"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.amount); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatSpanishDate(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{"2026-06-20", "20 de junio de 2026"},
		{"2025-01-01", "1 de enero de 2025"},
		{"2026-12-31", "31 de diciembre de 2026"},
		{"not-a-date", "not-a-date"},
	}

	for _, tt := range tests {
		if got := FormatSpanishDate(tt.iso); got != tt.want {
			t.Errorf("FormatSpanishDate(%q) = %q, want %q", tt.iso, got, tt.want)
		}
	}
}
