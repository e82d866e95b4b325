package dataset

import (
	"reflect"
	"testing"

	"csviz/internal/dates"
)

func rowsFrom(headers []string, records [][]string) *Dataset {
	ds := &Dataset{Name: "test", Headers: headers}
	for _, rec := range records {
		row := make(Row, len(headers))
		for i, h := range headers {
			row[h] = rec[i]
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds
}

func TestNumericClassificationThreshold(t *testing.T) {
	// 4 of 5 non-empty values parse: exactly 80%, which is in.
	ds := rowsFrom([]string{"v"}, [][]string{{"1"}, {"2.5"}, {"3"}, {"oops"}, {"4"}, {""}})
	if got := ds.NumericRatio("v"); got != 0.8 {
		t.Fatalf("NumericRatio = %v, want 0.8", got)
	}
	if !ds.IsNumericColumn("v") {
		t.Fatal("expected column at exactly 80% to classify as numeric")
	}

	// 3 of 5 stays out.
	ds2 := rowsFrom([]string{"v"}, [][]string{{"1"}, {"2"}, {"3"}, {"x"}, {"y"}})
	if ds2.IsNumericColumn("v") {
		t.Fatal("expected 60% parseable column to stay non-numeric")
	}
}

func TestNumericColumnsOrderAndNonFinite(t *testing.T) {
	ds := rowsFrom([]string{"a", "b", "c"}, [][]string{
		{"1", "x", "Inf"},
		{"2", "y", "NaN"},
	})
	if got := ds.NumericColumns(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("NumericColumns = %v, want [a]", got)
	}
}

func TestDateColumnDetection(t *testing.T) {
	ds := rowsFrom([]string{"when", "v"}, [][]string{
		{"01.02.2023", "1"},
		{"02.02.2023, 10:30", "2"},
		{"03.02.2023", "3"},
		{"not a date", "4"},
		{"05.02.2023", "5"},
	})
	col, ok := ds.DateColumn()
	if !ok || col != "when" {
		t.Fatalf("DateColumn = %q, %v; want when, true", col, ok)
	}

	info := ds.Columns()
	if info[0].Kind != "date" {
		t.Fatalf("kind of when = %s, want date", info[0].Kind)
	}
	if info[1].Kind != "numeric" {
		t.Fatalf("kind of v = %s, want numeric", info[1].Kind)
	}
}

func TestDateColumnAbsent(t *testing.T) {
	ds := rowsFrom([]string{"a"}, [][]string{{"1"}, {"2"}})
	if col, ok := ds.DateColumn(); ok {
		t.Fatalf("unexpected date column %q", col)
	}
}

func TestFilterByDate(t *testing.T) {
	ds := rowsFrom([]string{"when", "v"}, [][]string{
		{"01.02.2023", "1"},
		{"02.02.2023, 18:45", "2"},
		{"03.02.2023", "3"},
		{"garbage", "4"},
	})
	r, err := dates.ParseRange("01.02.2023", "02.02.2023")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	rows := ds.FilterByDate("when", r)
	if len(rows) != 2 {
		t.Fatalf("filtered %d rows, want 2 (end of day inclusive, bad date excluded)", len(rows))
	}
	if rows[1]["v"] != "2" {
		t.Fatalf("second row v = %q, want 2", rows[1]["v"])
	}

	// A zero range keeps everything, including the unparseable row.
	if got := ds.FilterByDate("when", dates.Range{}); len(got) != 4 {
		t.Fatalf("zero range filtered %d rows, want 4", len(got))
	}
}

func TestUniqueHeaders(t *testing.T) {
	got := uniqueHeaders([]string{" value ", "value", "", "value"})
	want := []string{"value", "value_2", "column_3", "value_3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("uniqueHeaders = %v, want %v", got, want)
	}
}
