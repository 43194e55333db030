// Package runner implements the non-interactive, "load a file and run
// it" entry point of spec.md §6, the analogue of the teacher's load
// helper in main.go. Unlike the REPL it never prints a result for a
// form that succeeds; only diagnostics reach its output.
package runner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jarns/skim/internal/lisp"
)

// Run reads every top-level form from path in order and evaluates each
// one against env, stopping at the first exception. Exit code 0 covers
// both a clean run to EOF and a form that raised a diagnostic: spec.md
// §6 calls the latter "current behavior," not a defect to fix, so this
// keeps exiting 0 and relies on the printed diagnostic to signal
// failure to a human reader. A file the runner could not even open is
// an environment error rather than a language exception, so that case
// alone returns 1.
func Run(env *lisp.Env, path string, out io.Writer, logger *zap.Logger) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	tag := filepath.Base(path)
	logger.Debug("running file", zap.String("path", path))

	r := lisp.NewReader(lisp.Lex(string(src), tag))
	for {
		item, err := r.ReadForm()
		if err != nil {
			lisp.PrintDiagnostic(out, err)
			return 0
		}
		if item == nil {
			return 0
		}
		if _, err := lisp.Eval(env, item); err != nil {
			lisp.PrintDiagnostic(out, err)
			return 0
		}
	}
}
