package kv

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/robalobadob/pairs/assets"
	"github.com/robalobadob/pairs/internal/scores"
)

var (
	_ scores.Store = (*Memory)(nil)
	_ scores.Store = (*SQLite)(nil)
)

func openTestSQLite(t *testing.T, path string) *SQLite {
	t.Helper()
	st, db, err := OpenSQLite(path, assets.Migrations())
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return st
}

func testStore(t *testing.T, st scores.Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := st.Read(ctx, "k"); err != nil || ok {
		t.Fatalf("Read(missing) = ok=%v err=%v", ok, err)
	}
	if err := st.Write(ctx, "k", "1,2"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := st.Write(ctx, "k", "3"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	v, ok, err := st.Read(ctx, "k")
	if err != nil || !ok || v != "3" {
		t.Fatalf("Read = %q ok=%v err=%v, want last write", v, ok, err)
	}
	if err := st.Write(ctx, "empty", ""); err != nil {
		t.Fatalf("Write(empty): %v", err)
	}
	if v, ok, _ := st.Read(ctx, "empty"); !ok || v != "" {
		t.Fatalf("empty value should exist, got %q ok=%v", v, ok)
	}
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory())
}

func TestSQLite(t *testing.T) {
	testStore(t, openTestSQLite(t, filepath.Join(t.TempDir(), "data", "kv.db")))
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	ctx := context.Background()

	st, db, err := OpenSQLite(path, assets.Migrations())
	if err != nil {
		t.Fatal(err)
	}
	m := scores.NewManager(st, "")
	for _, n := range []int{30, 12, 22} {
		if _, err := m.RecordScore(ctx, n); err != nil {
			t.Fatal(err)
		}
	}
	_ = db.Close()

	// Reopening re-runs migrate, which must skip applied files.
	st2 := openTestSQLite(t, path)
	got, err := scores.NewManager(st2, "").Scores(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []int{12, 22, 30}) {
		t.Fatalf("got %v", got)
	}
}
