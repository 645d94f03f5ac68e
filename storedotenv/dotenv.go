package storedotenv

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/zirkelc/typedenv"
)

// Options configures .env discovery.
type Options struct {
	// Filename is the env file name to search for (default: ".env").
	Filename string

	// Dir is the directory the search starts from (default: current directory).
	Dir string

	// SearchParents walks parent directories collecting every matching file.
	// Files closer to Dir take precedence over files further up.
	SearchParents bool

	// Required: if true, finding no files causes an error. Default: false
	// (returns an empty store).
	Required bool
}

// Load discovers .env files per opts and reads them into a flat string store.
// The process environment is left untouched.
func Load(opts Options) (typedenv.MapStore, error) {
	paths, err := discover(opts)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		if opts.Required {
			return nil, fmt.Errorf("no %s files found", filename(opts))
		}
		return typedenv.MapStore{}, nil
	}

	// discover returns nearest-first; feed godotenv furthest-first so the
	// nearest file wins for shared keys.
	for i, j := 0, len(paths)-1; i < j; i, j = i+1, j-1 {
		paths[i], paths[j] = paths[j], paths[i]
	}
	return LoadFiles(paths...)
}

// LoadFiles reads the given .env files into a flat string store. Later files
// take precedence: a key set by an earlier file is overridden by a later one,
// matching godotenv.Read's merge order.
func LoadFiles(paths ...string) (typedenv.MapStore, error) {
	values, err := godotenv.Read(paths...)
	if err != nil {
		return nil, fmt.Errorf("read env files: %w", err)
	}
	return typedenv.MapStore(values), nil
}

func filename(opts Options) string {
	if opts.Filename != "" {
		return opts.Filename
	}
	return ".env"
}

// discover finds env files starting at opts.Dir, optionally walking up to the
// filesystem root.
func discover(opts Options) ([]string, error) {
	dir := opts.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		dir = cwd
	}

	name := filename(opts)
	var paths []string
	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			paths = append(paths, candidate)
		}

		if !opts.SearchParents {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return paths, nil
}
