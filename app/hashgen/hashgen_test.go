package hashgen

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func TestHashText(t *testing.T) {
	tests := []struct {
		algo Algorithm
		want string
	}{
		// Known digests of "hello world"
		{algo: MD5, want: "5eb63bbbe01eeed093cb22bb8f5acdc3"},
		{algo: SHA1, want: "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed"},
		{algo: SHA256, want: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
	}

	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			got, err := HashText("hello world", tt.algo)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHashTextSHA512Length(t *testing.T) {
	got, err := HashText("hello world", SHA512)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 128 {
		t.Fatalf("sha512 hex length = %d, want 128", len(got))
	}
}

func TestHashTextHighway(t *testing.T) {
	a, err := HashText("hello world", Highway)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := HashText("hello world", Highway)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatalf("highway hash not deterministic: %s vs %s", a, b)
	}
	c, _ := HashText("hello worle", Highway)
	if a == c {
		t.Fatal("highway hash collision on differing inputs")
	}
}

func TestHashTextUnsupportedAlgorithm(t *testing.T) {
	if _, err := HashText("x", Algorithm("crc32")); err == nil {
		t.Fatal("expected error")
	}
}

func TestHashFileMatchesText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}

	fromFile, err := HashFile(path, SHA256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fromText, _ := HashText("hello world", SHA256)
	if fromFile != fromText {
		t.Fatalf("file digest %s != text digest %s", fromFile, fromText)
	}
}

func TestHashFileDecompressesGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte("hello world")); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "data.txt.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	// The digest covers the decompressed content
	got, err := HashFile(path, SHA256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := HashText("hello world", SHA256)
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestDetectCompressionByMagic(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(plain, []byte("not compressed"), 0o644); err != nil {
		t.Fatal(err)
	}
	ct, err := DetectCompressionByMagic(plain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ct != CompressionNone {
		t.Fatalf("plain file detected as %s", ct)
	}

	gzPath := filepath.Join(dir, "data.gz")
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte("x"))
	gz.Close()
	if err := os.WriteFile(gzPath, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	ct, err = DetectCompressionByMagic(gzPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ct != CompressionGzip {
		t.Fatalf("gzip file detected as %s", ct)
	}
}

func TestHashDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("beta"), 0o644); err != nil {
		t.Fatal(err)
	}

	first, err := HashDirectory(dir, "**/*", SHA256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Files) != 2 {
		t.Fatalf("hashed %d files, want 2", len(first.Files))
	}
	if first.Combined == "" {
		t.Fatal("combined digest is empty")
	}

	// Same content, same digest
	again, err := HashDirectory(dir, "**/*", SHA256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Combined != first.Combined {
		t.Fatalf("digest not stable: %s vs %s", again.Combined, first.Combined)
	}

	// Renaming a file changes the combined digest even though content is identical
	if err := os.Rename(filepath.Join(dir, "a.txt"), filepath.Join(dir, "c.txt")); err != nil {
		t.Fatal(err)
	}
	renamed, err := HashDirectory(dir, "**/*", SHA256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if renamed.Combined == first.Combined {
		t.Fatal("combined digest unchanged after rename")
	}
}

func TestHashDirectoryPattern(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.log"), []byte("log"), 0o644)
	os.WriteFile(filepath.Join(dir, "b.txt"), []byte("txt"), 0o644)

	got, err := HashDirectory(dir, "**/*.log", SHA256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Files) != 1 || got.Files[0].Path != "a.log" {
		t.Fatalf("files = %v", got.Files)
	}
}

func TestHashDirectoryEmpty(t *testing.T) {
	if _, err := HashDirectory(t.TempDir(), "**/*", SHA256); err == nil {
		t.Fatal("expected error for empty directory")
	}
}
