package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "calendar-events"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := kv.Put(ctx, "calendar-events", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := kv.Get(ctx, "calendar-events")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":"a"}]` {
		t.Fatalf("unexpected value %q", got)
	}

	if err := kv.Put(ctx, "calendar-events", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = kv.Get(ctx, "calendar-events")
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if string(got) != `[]` {
		t.Fatalf("expected overwritten value, got %q", got)
	}

	if _, err := kv.Get(ctx, "calendar-tasks"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected keys to be independent, got %v", err)
	}
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemory()
	exerciseKV(t, kv)

	value := []byte("abc")
	if err := kv.Put(context.Background(), "k", value); err != nil {
		t.Fatalf("put: %v", err)
	}
	value[0] = 'z'
	got, _ := kv.Get(context.Background(), "k")
	if string(got) != "abc" {
		t.Fatalf("expected stored copy, got %q", got)
	}
}

func TestMemoryKVCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewMemory().Put(ctx, "k", nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBoltKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.db")
	kv, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	exerciseKV(t, kv)
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("reopen bolt: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Get(context.Background(), "calendar-events")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if string(got) != `[]` {
		t.Fatalf("unexpected value after reopen %q", got)
	}
}

func TestOpenBoltRequiresPath(t *testing.T) {
	if _, err := OpenBolt("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestSQLiteKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "planner.db")
	kv, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer kv.Close()
	exerciseKV(t, kv)
}

func TestOpenSelectsDriver(t *testing.T) {
	dir := t.TempDir()

	kv, err := Open("bolt", filepath.Join(dir, "a.db"))
	if err != nil {
		t.Fatalf("open bolt driver: %v", err)
	}
	if _, ok := kv.(*BoltKV); !ok {
		t.Fatalf("expected *BoltKV, got %T", kv)
	}
	kv.Close()

	kv, err = Open("", filepath.Join(dir, "b.db"))
	if err != nil {
		t.Fatalf("open default driver: %v", err)
	}
	if _, ok := kv.(*SQLiteKV); !ok {
		t.Fatalf("expected *SQLiteKV, got %T", kv)
	}
	kv.Close()

	if _, err := Open("postgres", "x"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestEnsureDirForSQLite(t *testing.T) {
	if err := ensureDirForSQLite(":memory:"); err != nil {
		t.Fatalf("memory dsn: %v", err)
	}
	dir := filepath.Join(t.TempDir(), "data")
	if err := ensureDirForSQLite("file:" + filepath.Join(dir, "x.db") + "?cache=shared"); err != nil {
		t.Fatalf("file dsn: %v", err)
	}
}
