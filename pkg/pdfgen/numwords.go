package pdfgen

// Spanish cardinal vocabulary for amounts written out on legal documents.
var (
	unidades = []string{"", "UNO", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE"}
	decenas  = []string{"", "", "VEINTE", "TREINTA", "CUARENTA", "CINCUENTA", "SESENTA", "SETENTA", "OCHENTA", "NOVENTA"}
	// 10 through 19 are irregular and never take the "Y" conjunction.
	especiales = []string{"DIEZ", "ONCE", "DOCE", "TRECE", "CATORCE", "QUINCE", "DIECISÉIS", "DIECISIETE", "DIECIOCHO", "DIECINUEVE"}
	centenas   = []string{"", "CIENTO", "DOSCIENTOS", "TRESCIENTOS", "CUATROCIENTOS", "QUINIENTOS", "SEISCIENTOS", "SETECIENTOS", "OCHOCIENTOS", "NOVECIENTOS"}
)

// NumberToWords converts 0 <= n < 1_000_000 to uppercase Spanish words.
// 100 is "CIEN" (not "CIENTO"), 21 is "VEINTIUNO" (fused), and the "Y"
// conjunction appears only between tens and units. Out-of-range input
// returns an empty string.
func NumberToWords(n int) string {
	if n < 0 || n >= 1000000 {
		return ""
	}
	if n == 0 {
		return "CERO"
	}

	miles := n / 1000
	resto := n % 1000

	out := ""
	if miles > 0 {
		if miles == 1 {
			out = "MIL"
		} else {
			out = hundredsToWords(miles) + " MIL"
		}
	}
	if resto > 0 {
		if out != "" {
			out += " "
		}
		out += hundredsToWords(resto)
	}
	return out
}

func hundredsToWords(n int) string {
	if n == 0 {
		return ""
	}
	if n == 100 {
		return "CIEN"
	}

	c := n / 100
	d := (n % 100) / 10
	u := n % 10

	out := ""
	if c > 0 {
		out = centenas[c]
	}

	switch {
	case d == 1:
		out = join(out, especiales[u])
	case d == 2 && u != 0:
		out = join(out, "VEINTI"+unidades[u])
	default:
		if d > 0 {
			out = join(out, decenas[d])
		}
		if u > 0 {
			if d > 0 {
				out += " Y " + unidades[u]
			} else {
				out = join(out, unidades[u])
			}
		}
	}
	return out
}

func join(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}
