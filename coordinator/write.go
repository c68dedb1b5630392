package coordinator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nox-build/modsolve"
	"github.com/nox-build/modsolve/compiler"
)

// writeModules opens one output file per module under outDir and drives
// cc.Write into it, logging each module as it completes.
func writeModules(ctx context.Context, cc compiler.Concatenator, outputs []modsolve.ModuleOutput, outDir string, logger *slog.Logger) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %q: %w", outDir, err)
	}

	return cc.WriteAll(ctx, outputs, func(module modsolve.ModuleOutput) (io.WriteCloser, error) {
		f, err := openModuleOutput(outDir, module.Name)
		if err != nil {
			return nil, err
		}
		logger.Debug("writing module artifact", "name", module.Name, "path", f.Name())
		return f, nil
	})
}

// openModuleOutput creates (truncating) the artifact file for a module.
func openModuleOutput(outDir, moduleName string) (*os.File, error) {
	path := filepath.Join(outDir, moduleName+".js")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", path, err)
	}
	return f, nil
}
