package dataset

import "strings"

// SplitLine tokenizes a single CSV line into fields, honoring fields enclosed
// in double quotes so that delimiters inside them are kept literal. A doubled
// quote inside a quoted field yields one literal quote. Unterminated quotes
// consume the rest of the line rather than failing; a malformed cell is a
// value problem, not a load problem.
func SplitLine(line string, delim rune) []string {
	line = strings.TrimSuffix(line, "\r")
	fields := make([]string, 0, 8)
	var b strings.Builder
	inQuotes := false
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case inQuotes:
			if r == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					b.WriteRune('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				b.WriteRune(r)
			}
		case r == '"':
			inQuotes = true
		case r == delim:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, b.String())
	return fields
}

// sniffDelimiter picks the delimiter for a header line among ',', ';', '\t'
// by counting occurrences outside quoted regions. Ties go to the comma.
func sniffDelimiter(headerLine string) rune {
	counts := map[rune]int{',': 0, ';': 0, '\t': 0}
	inQuotes := false
	for _, r := range headerLine {
		if r == '"' {
			inQuotes = !inQuotes
			continue
		}
		if inQuotes {
			continue
		}
		if _, ok := counts[r]; ok {
			counts[r]++
		}
	}
	best := ','
	for _, cand := range []rune{';', '\t'} {
		if counts[cand] > counts[best] {
			best = cand
		}
	}
	return best
}
