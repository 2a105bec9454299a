package rust

import (
	"bytes"

	"github.com/matzehuels/cargodeps/pkg/errors"
)

// Render returns one "name:version\n" line per dependency, ordered by name.
// Output is all-or-nothing: if any dependency cannot be formatted no bytes
// are returned.
func Render(m *Manifest) ([]byte, error) {
	if m.Dependencies == nil {
		return nil, errors.New(errors.ErrCodeMissingDependencies, "manifest has no [dependencies] table")
	}

	var buf bytes.Buffer
	for _, name := range m.Dependencies.Names() {
		v, err := m.Dependencies[name].Format()
		if err != nil {
			return nil, errors.New(errors.GetCode(err), "%s: %s", name, errors.UserMessage(err))
		}
		buf.WriteString(name)
		buf.WriteByte(':')
		buf.WriteString(v)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
