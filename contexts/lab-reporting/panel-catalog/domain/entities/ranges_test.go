package entities

import "testing"

func TestParseNormalRangePlain(t *testing.T) {
	r, ok := ParseNormalRange("0.1 - 1.2 mg/dl", "")
	if !ok {
		t.Fatalf("expected range to parse")
	}
	if r.Lower != 0.1 || r.Upper != 1.2 {
		t.Fatalf("unexpected bounds: %+v", r)
	}
}

func TestParseNormalRangeThousandsSeparator(t *testing.T) {
	r, ok := ParseNormalRange("4000 - 10,000 /cu.mm", "")
	if !ok {
		t.Fatalf("expected range to parse")
	}
	if r.Lower != 4000 || r.Upper != 10000 {
		t.Fatalf("unexpected bounds: %+v", r)
	}
}

func TestParseNormalRangeSexQualified(t *testing.T) {
	text := "Male: 14 - 16 g%, Female: 12 - 14 g%"

	male, ok := ParseNormalRange(text, "Male")
	if !ok {
		t.Fatalf("expected male range to parse")
	}
	if male.Lower != 14 || male.Upper != 16 {
		t.Fatalf("unexpected male bounds: %+v", male)
	}

	female, ok := ParseNormalRange(text, "Female")
	if !ok {
		t.Fatalf("expected female range to parse")
	}
	if female.Lower != 12 || female.Upper != 14 {
		t.Fatalf("unexpected female bounds: %+v", female)
	}
}

func TestParseNormalRangeQualifiedFallsBackToFirst(t *testing.T) {
	// A sex with no dedicated qualifier still gets range-checked.
	r, ok := ParseNormalRange("Male: 14 - 16 g%, Female: 12 - 14 g%", "Other")
	if !ok {
		t.Fatalf("expected fallback range to parse")
	}
	if r.Lower != 14 || r.Upper != 16 {
		t.Fatalf("unexpected fallback bounds: %+v", r)
	}
}

func TestParseNormalRangeTextOnly(t *testing.T) {
	if _, ok := ParseNormalRange("Adequate On Smear", ""); ok {
		t.Fatalf("expected no range for descriptive text")
	}
}

func TestClassifyResult(t *testing.T) {
	cases := []struct {
		name   string
		result string
		normal string
		sex    string
		want   ResultFlag
	}{
		{"inside range", "1.0", "0.1 - 1.2 mg/dl", "", FlagNormal},
		{"at lower bound", "0.1", "0.1 - 1.2 mg/dl", "", FlagNormal},
		{"at upper bound", "1.2", "0.1 - 1.2 mg/dl", "", FlagNormal},
		{"below range", "0.05", "0.1 - 1.2 mg/dl", "", FlagLow},
		{"above range", "1.3", "0.1 - 1.2 mg/dl", "", FlagHigh},
		{"zero below lower", "0", "0.1 - 1.2 mg/dl", "", FlagLow},
		{"zero inside zero-based range", "0", "0 - 46 U/L", "", FlagNormal},
		{"thousands separator in result", "12,000", "4000 - 10,000 /cu.mm", "", FlagHigh},
		{"male haemoglobin low", "13.5", "Male: 14 - 16 g%, Female: 12 - 14 g%", "Male", FlagLow},
		{"female haemoglobin normal", "13.5", "Male: 14 - 16 g%, Female: 12 - 14 g%", "Female", FlagNormal},
		{"non-numeric result", "Adequate", "150000 - 450000 /lak cu.mm", "", FlagNone},
		{"descriptive normal text", "Normal", "Normocytic, Normochromic", "", FlagNone},
		{"blank result", "", "0.1 - 1.2 mg/dl", "", FlagNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyResult(tc.result, tc.normal, tc.sex)
			if got != tc.want {
				t.Fatalf("ClassifyResult(%q, %q, %q) = %s, want %s", tc.result, tc.normal, tc.sex, got, tc.want)
			}
		})
	}
}
