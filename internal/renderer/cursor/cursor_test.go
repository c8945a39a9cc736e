package cursor

import (
	"testing"

	"github.com/dshills/dial/internal/renderer/core"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name   string
		before string
		want   Location
	}{
		{"empty", "", Location{Line: 1, Column: 0, Width: 0}},
		{"single line", "Hello", Location{Line: 1, Column: 5, Width: 5}},
		{"after newline", "Hello\n", Location{Line: 2, Column: 0, Width: 0}},
		{"second line", "ab\ncde", Location{Line: 2, Column: 3, Width: 3}},
		{"blank lines", "\n\n\nx", Location{Line: 4, Column: 1, Width: 1}},
		{"multibyte", "héllo", Location{Line: 1, Column: 5, Width: 5}},
		{"wide", "a世界", Location{Line: 1, Column: 3, Width: 5}},
		{"combining", "e\u0301", Location{Line: 1, Column: 2, Width: 1}},
		{"tab", "\tx", Location{Line: 1, Column: 2, Width: 2}},
		{"wide on earlier line", "世界\nab", Location{Line: 2, Column: 2, Width: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Locate([]rune(tt.before)); got != tt.want {
				t.Errorf("Locate(%q) = %+v, want %+v", tt.before, got, tt.want)
			}
		})
	}
}

func TestProject(t *testing.T) {
	anchor := core.RectFromSize(5, 10, 20, 40)

	tests := []struct {
		name    string
		before  string
		padding int
		want    core.ScreenPos
	}{
		{"empty bordered", "", 0, core.ScreenPos{Row: 6, Col: 11}},
		{"after text", "Hello", 0, core.ScreenPos{Row: 6, Col: 16}},
		{"second line", "Hello\nwo", 0, core.ScreenPos{Row: 7, Col: 13}},
		{"padded", "ab", 2, core.ScreenPos{Row: 8, Col: 15}},
		{"wide runes", "世界", 0, core.ScreenPos{Row: 6, Col: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project([]rune(tt.before), anchor, tt.padding)
			if got != tt.want {
				t.Errorf("Project(%q) = %+v, want %+v", tt.before, got, tt.want)
			}
		})
	}
}

func TestProjectFollowsInsertAndDelete(t *testing.T) {
	anchor := core.RectFromSize(0, 0, 10, 10)
	text := []rune{}

	prev := Project(text, anchor, 0)
	for _, r := range "abc" {
		text = append(text, r)
		pos := Project(text, anchor, 0)
		if pos.Col != prev.Col+1 || pos.Row != prev.Row {
			t.Fatalf("after %q: %+v, want one column right of %+v", r, pos, prev)
		}
		prev = pos
	}

	text = text[:len(text)-1]
	if pos := Project(text, anchor, 0); pos.Col != prev.Col-1 {
		t.Errorf("after delete: col %d, want %d", pos.Col, prev.Col-1)
	}
}
