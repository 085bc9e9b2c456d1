package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorageSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s := NewLocalStorage(dir)

	url, err := s.Save("photo.png", strings.NewReader("png bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "/uploads/photo.png" {
		t.Errorf("url = %q, want /uploads/photo.png", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "photo.png"))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "png bytes" {
		t.Errorf("saved content = %q, want %q", data, "png bytes")
	}
}

func TestLocalStorageSameNameOverwrites(t *testing.T) {
	s := NewLocalStorage(filepath.Join(t.TempDir(), "uploads"))

	if _, err := s.Save("photo.png", strings.NewReader("first")); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	url, err := s.Save("photo.png", strings.NewReader("second"))
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, "photo.png"))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content after overwrite = %q, want %q", data, "second")
	}
	if url != "/uploads/photo.png" {
		t.Errorf("url = %q, want /uploads/photo.png", url)
	}
}

func TestLocalStorageRemove(t *testing.T) {
	s := NewLocalStorage(filepath.Join(t.TempDir(), "uploads"))

	url, err := s.Save("photo.png", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := s.Remove(url); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.dir, "photo.png")); !os.IsNotExist(err) {
		t.Errorf("file still present after Remove: %v", err)
	}

	// Removing an already-absent file is success
	if err := s.Remove(url); err != nil {
		t.Errorf("Remove of absent file: %v, want nil", err)
	}
}
