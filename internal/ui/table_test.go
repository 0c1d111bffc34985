package ui_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/wedlinker/internal/ui"
)

func TestTable_Aligns_Columns(t *testing.T) {
	t.Parallel()

	tbl := ui.NewTable(3)
	tbl.AddRow("1.", "Alex Yeoh", "vendor")
	tbl.AddRow("10.", "Bo", "")
	tbl.AddRow("2.", "Charlotte Oliveiro", "guest", "ignored")

	want := "" +
		"1.   Alex Yeoh           vendor\n" +
		"10.  Bo\n" +
		"2.   Charlotte Oliveiro  guest\n"

	if diff := cmp.Diff(want, tbl.String()); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_Empty(t *testing.T) {
	t.Parallel()

	if got := ui.NewTable(2).String(); got != "" {
		t.Fatalf("empty table rendered %q", got)
	}
}

func TestTheme_Plain_For_Buffers(t *testing.T) {
	t.Parallel()

	theme := ui.NewTheme(&bytes.Buffer{})
	if theme.Enabled() {
		t.Fatal("buffer is not a terminal")
	}

	if got, want := theme.Heading("Persons"), "Persons"; got != want {
		t.Fatalf("Heading=%q, want %q", got, want)
	}
}
