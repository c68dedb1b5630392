package compiler

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/nox-build/modsolve"
)

// Concatenator drives a PassthroughDriver and a compiling Driver per
// module and writes dontCompile output before compiled output, matching
// the solver's fixed emission order. It never reorders a module's files.
type Concatenator struct {
	Passthrough Driver
	Compiled    Driver
	// MaxConcurrency bounds how many modules compile at once. Compilation
	// across modules may overlap; zero uses the package default.
	MaxConcurrency int
}

const defaultMaxConcurrency = 8

// Write runs both drivers for module and writes dontCompile output
// followed by compiled output to w.
func (c Concatenator) Write(ctx context.Context, w io.Writer, module modsolve.ModuleOutput) error {
	dontCompile, err := c.Passthrough.Compile(ctx, module)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, dontCompile); err != nil {
		return fmt.Errorf("write dontCompile output for %q: %w", module.Name, err)
	}

	compiled, err := c.Compiled.Compile(ctx, module)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, compiled); err != nil {
		return fmt.Errorf("write compiled output for %q: %w", module.Name, err)
	}
	return nil
}

// WriterFor opens the output destination for a module's concatenated
// artifact.
type WriterFor func(module modsolve.ModuleOutput) (io.WriteCloser, error)

// WriteAll runs Write for every module concurrently, bounded by
// MaxConcurrency, opening each module's destination through newWriter.
func (c Concatenator) WriteAll(ctx context.Context, modules []modsolve.ModuleOutput, newWriter WriterFor) error {
	maxConcurrency := c.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = defaultMaxConcurrency
	}

	var (
		queueMu   sync.Mutex
		queueCond = sync.NewCond(&queueMu)
		queue     = modules
		closed    bool
	)

	var errOnce sync.Once
	var firstErr error
	setErr := func(err error) {
		if err == nil {
			return
		}
		errOnce.Do(func() { firstErr = err })
	}

	worker := func(wg *sync.WaitGroup) {
		defer wg.Done()
		for {
			queueMu.Lock()
			for len(queue) == 0 && !closed {
				queueCond.Wait()
			}
			if len(queue) == 0 {
				queueMu.Unlock()
				return
			}
			m := queue[0]
			queue = queue[1:]
			queueMu.Unlock()

			out, err := newWriter(m)
			if err != nil {
				setErr(fmt.Errorf("open output for %q: %w", m.Name, err))
				continue
			}
			writeErr := c.Write(ctx, out, m)
			closeErr := out.Close()
			if writeErr != nil {
				setErr(writeErr)
			} else if closeErr != nil {
				setErr(fmt.Errorf("close output for %q: %w", m.Name, closeErr))
			}
		}
	}

	workerCount := maxConcurrency
	if workerCount > len(modules) {
		workerCount = len(modules)
	}
	if workerCount == 0 {
		return nil
	}

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go worker(&wg)
	}

	queueMu.Lock()
	closed = true
	queueCond.Broadcast()
	queueMu.Unlock()

	wg.Wait()
	return firstErr
}
