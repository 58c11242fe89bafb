package barchart

import (
	"testing"
)

func TestLegendRows(t *testing.T) {
	var (
		scaler = NewOrdinalScale([]string{"X", "Y"}, Tableau10)
		legend = Legend{Swatch: DefaultSwatchSize, Spacing: DefaultRowSpacing, Scaler: scaler}
		rows   = legend.Rows()
	)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Offset != 0 || rows[1].Offset != DefaultRowSpacing {
		t.Fatalf("unexpected offsets %f and %f", rows[0].Offset, rows[1].Offset)
	}
	if rows[0].Color == rows[1].Color {
		t.Fatalf("legend rows share a color")
	}

	scaler.Scale("Z")
	rows = legend.Rows()
	if len(rows) != 3 {
		t.Fatalf("new category should add exactly one row, got %d", len(rows))
	}
	z := rows[2]
	if z.Category != "Z" || z.Offset != 2*DefaultRowSpacing {
		t.Fatalf("unexpected row %+v", z)
	}
	for _, r := range rows[:2] {
		if r.Color == z.Color {
			t.Fatalf("new category reuses the color of %s", r.Category)
		}
	}
}

func TestLegendEmpty(t *testing.T) {
	var legend Legend
	if rows := legend.Rows(); len(rows) != 0 {
		t.Fatalf("legend without scale has rows: %v", rows)
	}
	legend.Scaler = NewOrdinalScale(nil, Tableau10)
	if rows := legend.Rows(); len(rows) != 0 {
		t.Fatalf("legend of an empty scale has rows: %v", rows)
	}
}
