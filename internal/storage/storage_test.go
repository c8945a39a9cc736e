package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/dial/internal/snippet"
)

func sampleRecords() []snippet.Record {
	return []snippet.Record{
		{ID: "1", Title: "print hello", Language: "go", Content: "fmt.Println(\"hello\")\n"},
		{Title: "macro rules", Language: "rust", Content: "macro_rules! m {\n\t() => {};\n}"},
	}
}

func TestNewFileStoreFormat(t *testing.T) {
	tests := []struct {
		path   string
		format Format
		want   Format
	}{
		{"snippets.json", FormatAuto, FormatJSON},
		{"snippets.yaml", FormatAuto, FormatYAML},
		{"snippets.YML", FormatAuto, FormatYAML},
		{"snippets", FormatAuto, FormatJSON},
		{"snippets.json", FormatYAML, FormatYAML},
	}

	for _, tt := range tests {
		s, err := NewFileStore(tt.path, tt.format)
		if err != nil {
			t.Fatalf("NewFileStore(%q) error = %v", tt.path, err)
		}
		if s.Format() != tt.want {
			t.Errorf("NewFileStore(%q, %q).Format() = %q, want %q", tt.path, tt.format, s.Format(), tt.want)
		}
	}
}

func TestNewFileStoreUnknownFormat(t *testing.T) {
	_, err := NewFileStore("x.json", Format("xml"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("error = %v, want ErrUnknownFormat", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, _ := NewFileStore(filepath.Join(t.TempDir(), "snippets.json"), FormatAuto)

	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(records) != 1 || records[0] != snippet.Welcome() {
		t.Errorf("Load() = %+v, want welcome record", records)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	for _, content := range []string{"", "  \n", "[]", "[]\n"} {
		path := filepath.Join(t.TempDir(), "snippets.json")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		s, _ := NewFileStore(path, FormatAuto)

		records, err := s.Load()
		if err != nil {
			t.Fatalf("Load(%q) error = %v", content, err)
		}
		if len(records) != 1 || records[0].Title != "Welcome to Dial" {
			t.Errorf("Load(%q) = %+v, want welcome record", content, records)
		}
	}
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippets.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, _ := NewFileStore(path, FormatAuto)

	if _, err := s.Load(); err == nil {
		t.Error("Load() of corrupt file should fail")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"snippets.json", "snippets.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "dir", name)
			s, _ := NewFileStore(path, FormatAuto)

			want := sampleRecords()
			if err := s.Save(want); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			got, err := s.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("Load() = %d records, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
				}
			}

			if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
				t.Error("temporary file left behind")
			}
		})
	}
}

func TestSaveJSONLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippets.json")
	s, _ := NewFileStore(path, FormatAuto)

	if err := s.Save(sampleRecords()[:1]); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	if !strings.HasPrefix(text, "[\n  {") {
		t.Errorf("file not indented: %q", text)
	}
	for _, field := range []string{`"code":`, `"title":`, `"language":`} {
		if !strings.Contains(text, field) {
			t.Errorf("file missing %s: %q", field, text)
		}
	}
}

func TestSaveFailsOnDirectoryPath(t *testing.T) {
	dir := t.TempDir()
	s, _ := NewFileStore(dir, FormatJSON)

	if err := s.Save(sampleRecords()); err == nil {
		t.Error("Save() over a directory should fail")
	}
}
