package rust

import (
	"maps"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cargodeps/pkg/errors"
)

// Table maps dependency names to their declarations.
type Table map[string]Dependency

// Names returns the dependency names in lexicographic order.
func (t Table) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// Dependency is one entry of a [dependencies] table. It holds either a bare
// version requirement (serde = "1.0") or a detail table
// (tokio = { version = "1", features = ["rt"] }), never both.
type Dependency struct {
	version string
	detail  *DependencyDetail
}

// DependencyDetail is the table form of a dependency. Pointer fields are nil
// when the key is absent from the manifest.
type DependencyDetail struct {
	Version         *string  `toml:"version"`
	Registry        *string  `toml:"registry"`
	RegistryIndex   *string  `toml:"registry-index"`
	Path            *string  `toml:"path"`
	Git             *string  `toml:"git"`
	Branch          *string  `toml:"branch"`
	Tag             *string  `toml:"tag"`
	Rev             *string  `toml:"rev"`
	Features        []string `toml:"features"`
	Optional        bool     `toml:"optional"`
	DefaultFeatures *bool    `toml:"default-features"`
	Package         *string  `toml:"package"`
}

// Simple returns a dependency declared as a bare version string.
func Simple(version string) Dependency {
	return Dependency{version: version}
}

// Detailed returns a dependency declared as a table. A nil Features slice is
// replaced with an empty one.
func Detailed(d DependencyDetail) Dependency {
	if d.Features == nil {
		d.Features = []string{}
	}
	return Dependency{detail: &d}
}

// Detail returns the table form and true, or nil and false for a simple dependency.
func (d Dependency) Detail() (*DependencyDetail, bool) {
	return d.detail, d.detail != nil
}

// Format returns the version shown for the dependency. A detailed dependency
// without a version key is an error; git and path sources are never used as
// a substitute.
func (d Dependency) Format() (string, error) {
	if d.detail == nil {
		return d.version, nil
	}
	if d.detail.Version == nil {
		return "", errors.New(errors.ErrCodeMissingVersion, "detailed dependency has no version")
	}
	return *d.detail.Version, nil
}

// String implements fmt.Stringer. Unformattable dependencies print as "".
func (d Dependency) String() string {
	s, _ := d.Format()
	return s
}

// decodeDependency tries the string form first and falls back to the table
// form. A value matching neither (an integer, a table with a mistyped field)
// returns the table decode error.
func decodeDependency(md *toml.MetaData, prim toml.Primitive) (Dependency, error) {
	var version string
	if err := md.PrimitiveDecode(prim, &version); err == nil {
		return Simple(version), nil
	}

	var detail DependencyDetail
	if err := md.PrimitiveDecode(prim, &detail); err != nil {
		return Dependency{}, err
	}
	return Detailed(detail), nil
}
