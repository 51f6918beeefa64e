package assets

import (
	"io/fs"
	"testing"
)

func TestFaceListSkipsComments(t *testing.T) {
	faces, err := FaceList()
	if err != nil {
		t.Fatalf("FaceList: %v", err)
	}
	if len(faces) != 12 {
		t.Fatalf("expected 12 faces, got %d (%v)", len(faces), faces)
	}
	if faces[0] != "animal0" {
		t.Fatalf("expected animal0 first, got %q", faces[0])
	}
}

func TestMigrationsListed(t *testing.T) {
	names, err := fs.Glob(Migrations(), "*.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(names) == 0 || names[0] != "001_kv.sql" {
		t.Fatalf("unexpected migrations: %v", names)
	}
}
