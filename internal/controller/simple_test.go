package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestSimpleUI_Summary_PrintsTable(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	err := ui.Summary(
		"Curves",
		[]string{"Curve", "Segments"},
		[][]string{
			{"triangle", "39"},
			{"arrowhead", "27"},
		},
		[]string{"Total", "66"},
	)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"Curves",
		"triangle",
		"arrowhead",
		"39",
		"27",
		"TOTAL",
		"66",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_Summary_NoFooter(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	if err := ui.Summary("Shapes", []string{"Name"}, [][]string{{"tree"}}, nil); err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if !strings.Contains(buf.String(), "tree") {
		t.Fatalf("output missing row\noutput:\n%s", buf.String())
	}
}

func TestSimpleUI_Summary_EmptyHeader(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewSimpleUI(cmd)

	if err := ui.Summary("Shapes", nil, nil, nil); err == nil {
		t.Fatalf("Summary() expected error for empty header")
	}
}

func TestSimpleUI_InfofAndErrorf(t *testing.T) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	ui := NewSimpleUI(cmd)
	ui.Infof("wrote %s", "tree.svg")
	ui.Errorf("render failed: %v", "bad depth")

	if !strings.Contains(out.String(), "wrote tree.svg") {
		t.Fatalf("stdout missing info line\noutput:\n%s", out.String())
	}

	if !strings.Contains(errOut.String(), "render failed: bad depth") {
		t.Fatalf("stderr missing error line\noutput:\n%s", errOut.String())
	}
}
