package book

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
)

//go:embed schema.cue
var schemaCUE []byte

//go:embed standard.cue
var standardCUE []byte

// Standard returns the embedded standard book.
func Standard() (*Book, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(standardCUE, cue.Filename("standard.cue"))
	return CompileBook(v)
}

// LoadFile compiles a single CUE file into a Book.
func LoadFile(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("book: reading %s: %w", path, err)
	}
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	return CompileBook(v)
}

// Load compiles all CUE files of a directory into one Book. The files
// form a single CUE instance, so positions may be split across files
// but share one namespace.
func Load(dir string) (*Book, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("book: directory not found: %s", dir)
	}
	if err != nil {
		return nil, fmt.Errorf("book: accessing %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("book: not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("book: scanning %s: %w", dir, err)
	}
	cueFiles := 0
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".cue" {
			cueFiles++
		}
	}
	if cueFiles == 0 {
		return nil, fmt.Errorf("book: no CUE files found in %s", dir)
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, fmt.Errorf("book: no CUE instances loaded from %s", dir)
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, fmt.Errorf("book: loading CUE files: %w", inst.Err)
	}

	v := ctx.BuildInstance(inst)
	return CompileBook(v)
}
