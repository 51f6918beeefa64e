package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed faces.txt
var FS embed.FS

//go:embed sql/*.sql
var migrations embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// FaceList returns the embedded default face identifiers in file order.
func FaceList() ([]string, error) {
	return readLines("faces.txt")
}

// Migrations exposes the embedded *.sql files rooted at the sql directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "sql")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "sql" is a constant.
		panic(err)
	}
	return sub
}
