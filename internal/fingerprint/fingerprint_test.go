package fingerprint

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/substantialcattle5/harvester/testutil"
)

func TestFileIdenticalContent(t *testing.T) {
	dir := testutil.TempDir(t, "fingerprint-test")

	pathA := testutil.CreateTestFile(t, dir, "a.txt", "identical content")
	pathB := testutil.CreateTestFile(t, dir, "b.txt", "identical content")

	hashA, err := File(pathA)
	if err != nil {
		t.Fatalf("Failed to fingerprint %s: %v", pathA, err)
	}
	hashB, err := File(pathB)
	if err != nil {
		t.Fatalf("Failed to fingerprint %s: %v", pathB, err)
	}

	if hashA != hashB {
		t.Errorf("Identical files produced different fingerprints: %q vs %q", hashA, hashB)
	}
	if hashA == "" {
		t.Error("Fingerprint should not be empty")
	}
}

func TestFileDifferingContent(t *testing.T) {
	dir := testutil.TempDir(t, "fingerprint-test")

	pathA := testutil.CreateTestFile(t, dir, "a.txt", "content one")
	pathB := testutil.CreateTestFile(t, dir, "b.txt", "content two")

	hashA, err := File(pathA)
	if err != nil {
		t.Fatalf("Failed to fingerprint %s: %v", pathA, err)
	}
	hashB, err := File(pathB)
	if err != nil {
		t.Fatalf("Failed to fingerprint %s: %v", pathB, err)
	}

	if hashA == hashB {
		t.Errorf("Different files produced the same fingerprint: %q", hashA)
	}
}

func TestFileEmpty(t *testing.T) {
	dir := testutil.TempDir(t, "fingerprint-test")
	path := testutil.CreateTestFile(t, dir, "empty.txt", "")

	hash, err := File(path)
	if err != nil {
		t.Fatalf("Failed to fingerprint empty file: %v", err)
	}
	if hash == "" {
		t.Error("Empty file should still produce a fingerprint")
	}
}

func TestFileMissing(t *testing.T) {
	dir := testutil.TempDir(t, "fingerprint-test")
	missing := filepath.Join(dir, "does-not-exist.txt")

	_, err := File(missing)
	if err == nil {
		t.Fatal("Expected error for missing file")
	}

	var fpErr *Error
	if !errors.As(err, &fpErr) {
		t.Fatalf("Expected *fingerprint.Error, got %T", err)
	}
	if fpErr.Path != missing {
		t.Errorf("Error should carry the path, got %q", fpErr.Path)
	}
}
