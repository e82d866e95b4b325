package cmd

import "testing"

func TestParseDelimiter(t *testing.T) {
	cases := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"", 0, false},
		{",", ',', false},
		{";", ';', false},
		{"tab", '\t', false},
		{"\t", '\t', false},
		{"|", 0, true},
		{"comma", 0, true},
	}
	for _, tc := range cases {
		got, err := parseDelimiter(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parseDelimiter(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseDelimiter(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parseDelimiter(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
