package faces

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadNormalizes(t *testing.T) {
	in := "# comment\n Cat \n\ndog\nCAT\nfox\n"
	got, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{"cat", "dog", "fox"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestReadEmpty(t *testing.T) {
	if _, err := Read(strings.NewReader("# nothing\n\n")); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestResolveFileAndDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faces.txt")
	if err := os.WriteFile(path, []byte("owl\nbat\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve(file): %v", err)
	}
	if !reflect.DeepEqual(got, []string{"owl", "bat"}) {
		t.Fatalf("unexpected faces from file: %v", got)
	}

	def, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve(default): %v", err)
	}
	if len(def) < 6 {
		t.Fatalf("expected at least 6 default faces, got %d", len(def))
	}
}

func TestResolveMissingFile(t *testing.T) {
	if _, err := Resolve(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPick(t *testing.T) {
	all := []string{"a", "b", "c"}
	got, err := Pick(all, 2)
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("got %v", got)
	}
	got[0] = "z"
	if all[0] != "a" {
		t.Fatal("Pick must not alias the input slice")
	}
	if _, err := Pick(all, 4); err == nil {
		t.Fatal("expected error when asking for more faces than available")
	}
	if _, err := Pick(all, 0); err == nil {
		t.Fatal("expected error for zero pairs")
	}
}
