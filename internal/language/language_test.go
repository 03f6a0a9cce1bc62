package language

import (
	"reflect"
	"testing"

	"relname/internal/catalog"
)

func TestToISO2(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Canonical names
		{"English", "en"},
		{"French", "fr"},
		{"Chinese", "zh"},
		{"Sinhala", "si"},
		// Case and whitespace
		{" german ", "de"},
		// 2-letter codes pass through
		{"EN", "en"},
		// 3-letter codes convert
		{"fre", "fr"},
		{"ger", "de"},
		{"chi", "zh"},
		{"cze", "cs"},
		// Regions have no code
		{"Nordic", ""},
		{"ExYu", ""},
		// Unknown
		{"xyz", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToISO2(tt.input); got != tt.expected {
				t.Errorf("ToISO2(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToISO3(t *testing.T) {
	tests := map[string]string{
		"English":  "eng",
		"fr":       "fra",
		"Egyptian": "arz",
		"Nordic":   "und",
		"":         "und",
	}
	for input, want := range tests {
		if got := ToISO3(input); got != want {
			t.Errorf("ToISO3(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"de":  "German",
		"jpn": "Japanese",
		"":    "Unknown",
		"zz":  "ZZ",
	}
	for input, want := range tests {
		if got := DisplayName(input); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestCodes(t *testing.T) {
	got := Codes([]string{"English", "French", "english", "Nordic", " ", "ExYu"})
	want := []string{"en", "fr", "nordic", "exyu"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Codes() = %v, want %v", got, want)
	}
	if Codes(nil) != nil {
		t.Fatal("Codes(nil) should be nil")
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"French": "fr",
		"fre":    "fr",
		"FR":     "fr",
		"Nordic": "nordic",
	}
	for input, want := range tests {
		if got := Normalize(input); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestEveryCatalogLanguageIsKnown(t *testing.T) {
	for _, name := range catalog.Default().LanguageNames() {
		if !Known(name) {
			t.Errorf("catalogue language %q has no entry", name)
		}
	}
}
