// CLAUDE:SUMMARY Input/output for the file mode: memory-mapped reads with optional legacy-encoding transcoding, atomic writes, path sanity checks.
package textio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/edsrzf/mmap-go"
	"golang.org/x/text/encoding/htmlindex"
)

var (
	// ErrSameFile is returned when input and output name the same file.
	ErrSameFile = errors.New("input and output are the same file")
	// ErrInvalidUTF8 is returned when UTF-8 input contains invalid sequences.
	ErrInvalidUTF8 = errors.New("input is not valid UTF-8")
)

// ReadFile returns the text content of path. encoding is a WHATWG label
// ("windows-1252", "latin1", ...); empty or UTF-8 means no transcoding.
// A leading byte-order mark is dropped.
func ReadFile(path, encoding string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return "", fmt.Errorf("read %s: is a directory", path)
	}
	if fi.Size() == 0 {
		return "", nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return "", fmt.Errorf("mmap %s: %w", path, err)
	}
	defer m.Unmap()

	text, err := decode(m, encoding)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return strings.TrimPrefix(text, "\ufeff"), nil
}

// decode copies data out of the mapping, transcoding when needed.
func decode(data []byte, encoding string) (string, error) {
	if isUTF8(encoding) {
		if !utf8.Valid(data) {
			return "", ErrInvalidUTF8
		}
		return string(data), nil
	}
	e, err := htmlindex.Get(encoding)
	if err != nil {
		return "", fmt.Errorf("unsupported encoding %q: %w", encoding, err)
	}
	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", encoding, err)
	}
	return string(out), nil
}

func isUTF8(enc string) bool {
	e := strings.ToLower(strings.ReplaceAll(enc, "-", ""))
	return e == "utf8" || e == ""
}

// WriteFile writes text to path through a temporary file in the same
// directory, so readers never see a partial file.
func WriteFile(path, text string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".corrector-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}

// CheckPaths refuses an output path that would overwrite the input.
func CheckPaths(in, out string) error {
	absIn, err := filepath.Abs(in)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", in, err)
	}
	absOut, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", out, err)
	}
	if absIn == absOut {
		return ErrSameFile
	}
	fi, errIn := os.Stat(absIn)
	fo, errOut := os.Stat(absOut)
	if errIn == nil && errOut == nil && os.SameFile(fi, fo) {
		return ErrSameFile
	}
	return nil
}
