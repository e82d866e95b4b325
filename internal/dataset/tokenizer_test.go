package dataset

import (
	"reflect"
	"testing"
)

func TestSplitLine(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		delim rune
		want  []string
	}{
		{"plain", "a,b,c", ',', []string{"a", "b", "c"}},
		{"quoted comma", `a,"b,c",d`, ',', []string{"a", "b,c", "d"}},
		{"escaped quote", `a,"say ""hi""",c`, ',', []string{"a", `say "hi"`, "c"}},
		{"empty fields", "a,,c,", ',', []string{"a", "", "c", ""}},
		{"quoted empty", `"",""`, ',', []string{"", ""}},
		{"semicolon", "a;b;c", ';', []string{"a", "b", "c"}},
		{"tab", "a\tb\tc", '\t', []string{"a", "b", "c"}},
		{"crlf stripped", "a,b\r", ',', []string{"a", "b"}},
		{"unterminated quote", `a,"b,c`, ',', []string{"a", "b,c"}},
		{"single field", "only", ',', []string{"only"}},
		{"empty line", "", ',', []string{""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitLine(tc.line, tc.delim)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitLine(%q) = %#v, want %#v", tc.line, got, tc.want)
			}
		})
	}
}

func TestSniffDelimiter(t *testing.T) {
	cases := []struct {
		line string
		want rune
	}{
		{"a,b,c", ','},
		{"a;b;c", ';'},
		{"a\tb\tc", '\t'},
		{`"x;y",a,b`, ','}, // quoted region must not count
		{"single", ','},
	}
	for _, tc := range cases {
		if got := sniffDelimiter(tc.line); got != tc.want {
			t.Fatalf("sniffDelimiter(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}
