package parser

import "testing"

func TestToGoName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"new_catalog_ui", "NewCatalogUi"},
		{"FeatureA", "FeatureA"},
		{"dark-mode", "DarkMode"},
		{"beta_v2", "BetaV2"},
		{"APP_ENV", "APPENV"},
		{"simple", "Simple"},
		{"double__sep", "DoubleSep"},
		{"-leading", "Leading"},
		{"with space", "WithSpace"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ToGoName(tt.input)
			if result != tt.expected {
				t.Errorf("ToGoName(%q) = %q, ожидалось %q", tt.input, result, tt.expected)
			}
		})
	}
}
