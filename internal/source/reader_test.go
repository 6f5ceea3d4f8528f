package source

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"
)

const sample = `<?xml version="1.0"?><usfx><book id="GEN"/></usfx>`

func writePlain(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func writeGzip(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(sample)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("file close: %v", err)
	}
	return path
}

func writeXZ(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	xzw, err := xz.NewWriter(f)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	if _, err := xzw.Write([]byte(sample)); err != nil {
		t.Fatalf("xz write: %v", err)
	}
	if err := xzw.Close(); err != nil {
		t.Fatalf("xz close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("file close: %v", err)
	}
	return path
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"plain xml", writePlain(t, dir, "source.xml")},
		{"gzip", writeGzip(t, dir, "source.xml.gz")},
		{"xz", writeXZ(t, dir, "source.xml.xz")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Open(tt.path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer r.Close()

			data, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("read failed: %v", err)
			}
			if string(data) != sample {
				t.Errorf("content = %q, want %q", data, sample)
			}
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.xml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadAll(t *testing.T) {
	path := writeGzip(t, t.TempDir(), "in.xml.gz")
	data, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != sample {
		t.Errorf("content = %q", data)
	}
}

func TestDigestFile(t *testing.T) {
	dir := t.TempDir()
	path := writePlain(t, dir, "source.xml")

	d1, err := DigestFile(path)
	if err != nil {
		t.Fatalf("DigestFile failed: %v", err)
	}
	if len(d1) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(d1))
	}

	d2, err := DigestFile(path)
	if err != nil {
		t.Fatalf("DigestFile failed: %v", err)
	}
	if d1 != d2 {
		t.Error("digest is not deterministic")
	}

	if d1 != Blake3Hash([]byte(sample)) {
		t.Error("file digest differs from in-memory digest of same bytes")
	}

	other := writePlain(t, dir, "other.xml")
	if err := os.WriteFile(other, []byte(sample+"x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	d3, err := DigestFile(other)
	if err != nil {
		t.Fatalf("DigestFile failed: %v", err)
	}
	if d3 == d1 {
		t.Error("different content produced the same digest")
	}
}
