package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/cargodeps/pkg/deps/rust"
)

// listDependencies decodes the manifest at path and writes its dependency
// listing to w. A manifest that cannot be opened is reported on w and is not
// an error; everything after a successful open is.
func listDependencies(ctx context.Context, w io.Writer, path string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	f, err := os.Open(path)
	if err != nil {
		logger.Debug("Open failed", "path", path, "err", err)
		_, werr := fmt.Fprintln(w, err)
		return werr
	}
	defer f.Close()

	logger.Debug("Decoding manifest", "path", path)
	m, err := rust.Parse(f, rust.Options{
		Logger: func(msg string, args ...any) { logger.Debugf(msg, args...) },
	})
	if err != nil {
		return err
	}
	logger.Debug("Decoded manifest", "package", m.Package.Name, "version", m.Package.Version)
	for _, name := range m.Dependencies.Names() {
		logger.Debug("Dependency", "name", name, "value", m.Dependencies[name])
	}

	out, err := rust.Render(m)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Listed %d dependencies", len(m.Dependencies)))
	return nil
}
