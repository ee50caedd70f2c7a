package docmend

import (
	"path"
	"testing"

	"github.com/spf13/afero"
)

const testRoot = "/pkg"

// newTestFs lays an unpacked package out under testRoot on an in-memory
// filesystem from a map of part name to raw XML content.
func newTestFs(t *testing.T, parts map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(testRoot, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, content := range parts {
		full := path.Join(testRoot, name)
		if err := fs.MkdirAll(path.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := afero.WriteFile(fs, full, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return fs
}

// newTestPackage builds an unpacked package on an in-memory filesystem from a
// map of part name to raw XML content.
func newTestPackage(t *testing.T, parts map[string]string) *Package {
	t.Helper()

	pkg, err := OpenFs(newTestFs(t, parts), testRoot)
	if err != nil {
		t.Fatal(err)
	}
	return pkg
}

// partContent reads a part's current on-disk bytes, bypassing the parse cache.
func partContent(t *testing.T, p *Package, name string) string {
	t.Helper()
	data, err := afero.ReadFile(p.fs, p.partPath(name))
	if err != nil {
		t.Fatalf("failed to read part %s: %v", name, err)
	}
	return string(data)
}

// reopen rebinds the same package directory so parts are re-read from disk
// instead of served from the parse cache.
func reopen(t *testing.T, p *Package) *Package {
	t.Helper()
	pkg, err := OpenFs(p.fs, p.root)
	if err != nil {
		t.Fatal(err)
	}
	return pkg
}
