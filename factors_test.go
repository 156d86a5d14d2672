package carbonscope

import "testing"

func TestSuggestFactor(t *testing.T) {
	tests := []struct {
		country, category string
		want              float64
		ok                bool
	}{
		{"India", "Electricity", 0.82, true},
		{"India", "Mobile Combustion", 2.31, true},
		{"United States", "Electricity", 0.42, true},
		{"United States", "Business Travel", 0.12, true},
		{"India", "Business Travel", 0, false},
		{"Atlantis", "Electricity", 0, false},
	}
	for _, tt := range tests {
		got, ok := SuggestFactor(tt.country, tt.category)
		if got != tt.want || ok != tt.ok {
			t.Errorf("SuggestFactor(%q, %q) = %v, %v, want %v, %v",
				tt.country, tt.category, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFactorCountries(t *testing.T) {
	countries := FactorCountries()
	if len(countries) == 0 {
		t.Fatal("embedded factor table should not be empty")
	}
	found := false
	for _, c := range countries {
		if c == "India" {
			found = true
		}
	}
	if !found {
		t.Error("factor table should cover India")
	}
}
