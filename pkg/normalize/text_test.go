package normalize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain   text\n here", "plain text here"},
		{"<b>En camino</b>", "En camino"},
		{"Entregado<br>al destinatario", "Entregado al destinatario"},
		{"Sucursal &amp; Dep&oacute;sito", "Sucursal & Depósito"},
		{"<td> CENTRO DE PROCESAMIENTO <span>MONTE GRANDE</span></td>", "CENTRO DE PROCESAMIENTO MONTE GRANDE"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Text(tt.in); got != tt.want {
			t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"En Tránsito", "en transito"},
		{"DISTRIBUCIÓN", "distribucion"},
		{"Pingüino", "pinguino"},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{" rr123456789ar ", "RR123456789AR"},
		{"3600-0012 3456.789", "360000123456789"},
		{"ñ-123", "123"},
	}
	for _, tt := range tests {
		if got := Canonical(tt.in); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsDigits(t *testing.T) {
	if !IsDigits("0123456789") {
		t.Error("digits rejected")
	}
	for _, s := range []string{"", "12a", "١٢"} {
		if IsDigits(s) {
			t.Errorf("IsDigits(%q) = true", s)
		}
	}
}

func TestMaskName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Juan Perez", "J*** P****"},
		{"  ana  ", "a**"},
		{"José", "J***"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := MaskName(tt.in); got != tt.want {
			t.Errorf("MaskName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFirst(t *testing.T) {
	if got := First("", "", "b", "c"); got != "b" {
		t.Errorf("First = %q", got)
	}
}
