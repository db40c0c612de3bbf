package textio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		content  []byte
		encoding string
		want     string
	}{
		{"utf8", []byte("El año 1810\nMéxico"), "", "El año 1810\nMéxico"},
		{"utf8 label", []byte("país"), "UTF-8", "país"},
		{"bom", []byte("\xef\xbb\xbfhola"), "", "hola"},
		{"empty", []byte{}, "", ""},
		{"latin1", []byte("a\xf1o pa\xeds"), "latin1", "año país"},
		{"windows-1252", []byte("\x93hola\x94"), "windows-1252", "“hola”"},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, tt.name+".txt")
		if err := os.WriteFile(path, tt.content, 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := ReadFile(path, tt.encoding)
		if err != nil {
			t.Errorf("%s: ReadFile: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: ReadFile = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestReadFile_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ReadFile(filepath.Join(dir, "missing.txt"), ""); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, want ErrNotExist", err)
	}
	if _, err := ReadFile(dir, ""); err == nil {
		t.Error("directory: expected error")
	}

	bad := filepath.Join(dir, "bad.txt")
	os.WriteFile(bad, []byte("a\xf1o"), 0o644)
	if _, err := ReadFile(bad, ""); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("invalid utf8: err = %v, want ErrInvalidUTF8", err)
	}
	if _, err := ReadFile(bad, "no-such-encoding"); err == nil {
		t.Error("unknown encoding: expected error")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	if err := WriteFile(path, "primera"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := WriteFile(path, "dieciséis de septiembre"); err != nil {
		t.Fatalf("WriteFile overwrite: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "dieciséis de septiembre" {
		t.Errorf("content = %q", data)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestWriteFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.txt")
	if err := WriteFile(path, "x"); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestCheckPaths(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	os.WriteFile(in, []byte("x"), 0o644)

	if err := CheckPaths(in, filepath.Join(dir, "out.txt")); err != nil {
		t.Errorf("distinct paths: %v", err)
	}
	if err := CheckPaths(in, in); !errors.Is(err, ErrSameFile) {
		t.Errorf("same path: err = %v, want ErrSameFile", err)
	}
	if err := CheckPaths(in, filepath.Join(dir, ".", "in.txt")); !errors.Is(err, ErrSameFile) {
		t.Errorf("equivalent path: err = %v, want ErrSameFile", err)
	}
	link := filepath.Join(dir, "link.txt")
	if err := os.Symlink(in, link); err == nil {
		if err := CheckPaths(in, link); !errors.Is(err, ErrSameFile) {
			t.Errorf("symlink: err = %v, want ErrSameFile", err)
		}
	}
}
