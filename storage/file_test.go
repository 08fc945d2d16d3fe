package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if _, err := s.Load(ctx, "m2_pos_orders"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing slot: err = %v, want ErrNotFound", err)
	}

	doc := []byte(`[{"id":"M2-2025-1234"}]`)
	if err := s.Save(ctx, "m2_pos_orders", doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(ctx, "m2_pos_orders")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("Load = %q, want %q", got, doc)
	}

	// Whole-value overwrite.
	if err := s.Save(ctx, "m2_pos_orders", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = s.Load(ctx, "m2_pos_orders")
	if string(got) != `[]` {
		t.Errorf("after overwrite = %q, want []", got)
	}

	if err := s.Delete(ctx, "m2_pos_orders"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Load(ctx, "m2_pos_orders"); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete: err = %v, want ErrNotFound", err)
	}
	// Deleting again is fine.
	if err := s.Delete(ctx, "m2_pos_orders"); err != nil {
		t.Errorf("double delete: %v", err)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := s.Save(context.Background(), "m2_pos_menu", []byte(`[]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "m2_pos_menu.json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("data dir contents = %v, want just m2_pos_menu.json", names)
	}
	if filepath.Ext(entries[0].Name()) != ".json" {
		t.Errorf("slot file should be .json, got %s", entries[0].Name())
	}
}
