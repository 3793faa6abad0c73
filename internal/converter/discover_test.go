// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package converter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	touch := func(name string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	touch("photo.WEBP") // uppercase extension must still match
	touch("b.png")
	touch("a.jpeg")
	touch("scan.tif")
	touch("notes.txt")
	touch("archive.zip")
	if err := os.MkdirAll(filepath.Join(dir, "nested.png"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "nested.png", "inner.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := discover(dir)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(dir, "a.jpeg"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "photo.WEBP"),
		filepath.Join(dir, "scan.tif"),
	}
	if len(files) != len(want) {
		t.Fatalf("discovered %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestDiscover_EmptyDir(t *testing.T) {
	files, err := discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	if _, err := discover(filepath.Join(t.TempDir(), "gone")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
