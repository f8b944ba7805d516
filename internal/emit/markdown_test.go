package emit

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestMarkdownHeader(t *testing.T) {
	var buf bytes.Buffer
	m := NewMarkdown(&buf)
	if err := m.Header("Config", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Header("Details", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "# Config\n\n") {
		t.Errorf("expected level-0 header, got %q", got)
	}
	if !strings.Contains(got, "### Details\n\n") {
		t.Errorf("expected level-2 header, got %q", got)
	}
}

func TestMarkdownDescriptionStripsIndentation(t *testing.T) {
	var buf bytes.Buffer
	m := NewMarkdown(&buf)
	if err := m.Description("  First line.\n\tSecond line."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "First line.\nSecond line.\n\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestMarkdownTable(t *testing.T) {
	var buf bytes.Buffer
	m := NewMarkdown(&buf)
	err := m.Table([]string{"Name", "Type"}, [][]string{
		{"a", "String"},
		{"b", "Integer"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := buf.String()
	for _, line := range []string{
		"| Name | Type |\n",
		"| -- | -- |\n",
		"| a | String |\n",
		"| b | Integer |\n",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("expected output to contain %q, got %q", line, got)
		}
	}
}

func TestMarkdownTableShapeMismatch(t *testing.T) {
	var buf bytes.Buffer
	m := NewMarkdown(&buf)
	err := m.Table([]string{"Name", "Type"}, [][]string{
		{"a", "String"},
		{"b", "Integer", "extra"},
	})
	var shape *ShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
	if shape.Columns != 2 || shape.Cells != 3 {
		t.Errorf("expected 2 columns / 3 cells, got %d / %d", shape.Columns, shape.Cells)
	}
	// The malformed row must not be written, not even partially.
	if strings.Contains(buf.String(), "b") {
		t.Errorf("partial row written: %q", buf.String())
	}
}

func TestHeaderReference(t *testing.T) {
	if got := HeaderReference("Config"); got != "[Config](#Config)" {
		t.Errorf("expected %q, got %q", "[Config](#Config)", got)
	}
}
