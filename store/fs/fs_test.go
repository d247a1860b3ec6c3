package fs

import (
	"bytes"
	"context"
	"testing"
)

func TestReadWriteDelete(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// miss before first write, and not an error
	if _, ok, err := s.Read(ctx, "k"); err != nil || ok {
		t.Fatalf("Read before write: ok=%v err=%v", ok, err)
	}

	want := []byte("payload")
	if err := s.Write(ctx, "k", want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, ok, err := s.Read(ctx, "k")
	if err != nil || !ok || !bytes.Equal(got, want) {
		t.Fatalf("Read: ok=%v err=%v got=%q", ok, err, got)
	}

	// overwrite replaces the record
	want2 := []byte("payload2")
	if err := s.Write(ctx, "k", want2); err != nil {
		t.Fatalf("Write overwrite: %v", err)
	}
	if got, _, _ := s.Read(ctx, "k"); !bytes.Equal(got, want2) {
		t.Fatalf("Read after overwrite: got %q", got)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Read(ctx, "k"); ok {
		t.Fatalf("Read after delete should miss")
	}

	// deleting an absent key succeeds
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}
}

func TestSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s1, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s1.Write(ctx, "settings", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s1.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := New(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, ok, err := s2.Read(ctx, "settings")
	if err != nil || !ok || !bytes.Equal(got, []byte(`{"v":1}`)) {
		t.Fatalf("Read after reopen: ok=%v err=%v got=%q", ok, err, got)
	}
}

func TestKeysWithPathCharacters(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	keys := []string{"a/b", "a\\b", "..", "ns:slot", "UPPER", "upper"}
	for i, k := range keys {
		if err := s.Write(ctx, k, []byte{byte(i)}); err != nil {
			t.Fatalf("Write %q: %v", k, err)
		}
	}
	for i, k := range keys {
		got, ok, err := s.Read(ctx, k)
		if err != nil || !ok || !bytes.Equal(got, []byte{byte(i)}) {
			t.Fatalf("Read %q: ok=%v err=%v got=%v", k, ok, err, got)
		}
	}
}
