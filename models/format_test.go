package models

import "testing"

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{in: "", want: FormatBanner},
		{in: "banner", want: FormatBanner},
		{in: "simple", want: FormatSimple},
		{in: "table", want: FormatTable},
		{in: "json", want: FormatJSON},
		{in: "xml", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseOutputFormat(%q) error = nil, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOutputFormat(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOutputFormat_String(t *testing.T) {
	formats := []OutputFormat{FormatBanner, FormatSimple, FormatTable, FormatJSON}
	for _, f := range formats {
		parsed, err := ParseOutputFormat(f.String())
		if err != nil {
			t.Errorf("ParseOutputFormat(%q) error = %v", f.String(), err)
			continue
		}
		if parsed != f {
			t.Errorf("ParseOutputFormat(%v.String()) = %v, want round-trip", f, parsed)
		}
	}
}
