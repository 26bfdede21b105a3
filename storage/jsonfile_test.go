package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/thelanternworks/inklight/analysis"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "memory.json")
	store := NewMemoryStore(path)

	mem := analysis.UserMemory{
		Coping:    []string{"a walk", "music"},
		Likes:     []string{"baking bread"},
		Stressors: []string{"quarterly reviews"},
		Wins:      []string{"finished the application"},
		UpdatedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	if err := store.Save(mem); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, mem) {
		t.Fatalf("got=%+v, want %+v", got, mem)
	}
}

func TestMemoryStoreMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(filepath.Join(t.TempDir(), "absent.json"))
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.IsEmpty() {
		t.Fatalf("got=%+v, want empty", got)
	}
}

func TestMemoryStoreCorruptFileIsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "memory.json")
	if err := os.WriteFile(path, []byte(`{"coping": [truncated`), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	got, err := NewMemoryStore(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.IsEmpty() {
		t.Fatalf("got=%+v, want empty", got)
	}
}

func TestMemoryStoreSaveCreatesParentDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deeper", "memory.json")
	store := NewMemoryStore(path)
	if err := store.Save(analysis.UserMemory{Likes: []string{"tea"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
}
