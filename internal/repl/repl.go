// Package repl implements the interactive read-eval-print loop of
// spec.md §6, the analogue of the teacher's input loop in main.go.
// Where the teacher reads from a bufio.Reader over os.Stdin by hand,
// this uses chzyer/readline for history and line editing, the same
// library the broader example corpus (launix-de-memcp, npillmayer-gorgo)
// reaches for in front of a toy Lisp/Scheme evaluator, and mirrors
// original_source's repl.rs handling of rustyline's Interrupted/Eof
// errors as session-ending, not recoverable, conditions.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"github.com/jarns/skim/internal/lisp"
)

// Session owns the line editor and the environment forms are evaluated
// against across the whole session, so `define` at the prompt persists
// from one line to the next (spec.md §4.3).
type Session struct {
	env    *lisp.Env
	rl     *readline.Instance
	out    io.Writer
	logger *zap.Logger
}

// New constructs a Session printing prompt and reading/writing stdio,
// evaluating forms against env.
func New(env *lisp.Env, prompt string, logger *zap.Logger) (*Session, error) {
	rl, err := readline.New(prompt)
	if err != nil {
		return nil, fmt.Errorf("starting line editor: %w", err)
	}
	return &Session{env: env, rl: rl, out: rl.Stdout(), logger: logger}, nil
}

// Close releases the line editor's terminal state.
func (s *Session) Close() error {
	return s.rl.Close()
}

// Run reads lines until EOF (Ctrl-D) or interrupt (Ctrl-C), evaluating
// every complete top-level form in the accumulated buffer of input. A line that
// leaves a form unterminated is not an error; the loop keeps reading
// continuation lines under the same prompt until the reader either
// completes a form or reports a real syntax exception.
func (s *Session) Run() {
	var pending string
	for {
		line, err := s.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			s.logger.Warn("reading input", zap.Error(err))
			return
		}

		pending += line + "\n"
		if rest, done := s.evalPending(pending); !done {
			pending = rest
		} else {
			pending = ""
		}
	}
}

// evalPending tries to read and evaluate every complete form currently
// buffered in src. It returns (src, false) when the buffer ends with an
// unterminated form that should keep accumulating lines, or ("", true)
// once every complete form has been consumed (successfully or not).
func (s *Session) evalPending(src string) (string, bool) {
	reader := lisp.NewReader(lisp.Lex(src, ""))
	for {
		item, err := reader.ReadForm()
		if err != nil {
			if isUnterminated(err) {
				return src, false
			}
			lisp.PrintDiagnostic(s.out, err)
			return "", true
		}
		if item == nil {
			return "", true
		}
		v, err := lisp.Eval(s.env, item)
		if err != nil {
			lisp.PrintDiagnostic(s.out, err)
			continue
		}
		fmt.Fprintln(s.out, lisp.Format(v))
	}
}

// isUnterminated reports whether err is the specific "unexpected end of
// input" syntax exception a dangling open paren produces, as opposed to
// some other syntax error that should be reported immediately.
func isUnterminated(err error) bool {
	d, ok := lisp.AsDiagnostic(err)
	if !ok {
		return false
	}
	return d.Title() == "wrong syntax" && strings.Contains(d.Detail(), "unexpected end of input")
}
