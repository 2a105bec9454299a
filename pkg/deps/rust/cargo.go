package rust

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cargodeps/pkg/errors"
)

// Options configures manifest decoding.
type Options struct {
	Logger func(string, ...any) // Debug callback for ignored keys (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Manifest is a decoded Cargo.toml.
type Manifest struct {
	Package      Package
	Dependencies Table // nil when the manifest has no [dependencies] section
}

// Package is the [package] section of a manifest.
type Package struct {
	Name    string   `toml:"name"`
	Version string   `toml:"version"`
	Authors []string `toml:"authors"`
}

type cargoFile struct {
	Package      Package                   `toml:"package"`
	Dependencies map[string]toml.Primitive `toml:"dependencies"`
}

// Parse reads a manifest from r and decodes it. The reader is consumed but
// not closed.
func Parse(r io.Reader, opts Options) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read manifest")
	}
	return Decode(data, opts)
}

// Decode decodes manifest text. The [package] section must define string
// name and version keys. Keys this package does not know about are skipped
// and reported through opts.Logger.
func Decode(data []byte, opts Options) (*Manifest, error) {
	opts = opts.WithDefaults()

	var cargo cargoFile
	md, err := toml.Decode(string(data), &cargo)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}

	for _, key := range []string{"name", "version"} {
		if !md.IsDefined("package", key) {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "missing package.%s", key)
		}
	}

	m := &Manifest{Package: cargo.Package}
	if md.IsDefined("dependencies") {
		if typ := md.Type("dependencies"); typ != "Hash" {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "dependencies is not a table (got %s)", typ)
		}
		m.Dependencies = make(Table, len(cargo.Dependencies))
		for name, prim := range cargo.Dependencies {
			dep, err := decodeDependency(&md, prim)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "dependency %q", name)
			}
			m.Dependencies[name] = dep
		}
	}

	for _, key := range md.Undecoded() {
		opts.Logger("ignoring unknown key %s", key)
	}
	return m, nil
}
