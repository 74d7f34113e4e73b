package usecase

import "testing"

func TestFormatBRL(t *testing.T) {
	cases := map[float64]string{
		0:       "R$ 0,00",
		0.5:     "R$ 0,50",
		12.3:    "R$ 12,30",
		1234.56: "R$ 1.234,56",
		1000000: "R$ 1.000.000,00",
		-45.678: "-R$ 45,68",
		999.999: "R$ 1.000,00",
	}
	for in, want := range cases {
		if got := formatBRL(in); got != want {
			t.Fatalf("formatBRL(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone("+55 (11) 99999-8888"); got != "5511999998888" {
		t.Fatalf("unexpected %q", got)
	}
	if got := NormalizePhone("abc"); got != "" {
		t.Fatalf("unexpected %q", got)
	}
}
