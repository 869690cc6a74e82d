package controller

import (
	"bytes"
	"strings"
	"testing"
)

func TestTUI_Summary_PrintsStyledTable(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	err := tui.Summary(
		"Edge Kinds",
		[]string{"Name", "Control Points"},
		[][]string{
			{"straight", "0"},
			{"quad", "1"},
			{"arc", "2"},
		},
		[]string{"Total", "3"},
	)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"Edge Kinds",
		"Name",
		"straight",
		"quad",
		"arc",
		"Total",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_Summary_AlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	err := tui.Summary(
		"Curves",
		[]string{"Curve", "Depth"},
		[][]string{
			{"tree", "4"},
			{"arrowhead", "6"},
		},
		nil,
	)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	// The widest cell in the first column sets its width, so the short
	// row is padded out to match.
	if !strings.Contains(buf.String(), "tree       4") {
		t.Fatalf("first column not padded to widest cell\noutput:\n%s", buf.String())
	}
}

func TestTUI_Summary_EmptyHeader(t *testing.T) {
	tui := NewTUI(&bytes.Buffer{})

	if err := tui.Summary("Shapes", nil, nil, nil); err == nil {
		t.Fatalf("Summary() expected error for empty header")
	}
}

func TestTUI_InfofAndErrorf(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.Infof("wrote %s", "row.gif")
	tui.Errorf("reveal failed: %v", "surface closed")

	output := buf.String()

	if !strings.Contains(output, "wrote row.gif") {
		t.Fatalf("output missing info line\noutput:\n%s", output)
	}

	if !strings.Contains(output, "reveal failed: surface closed") {
		t.Fatalf("output missing error line\noutput:\n%s", output)
	}
}
