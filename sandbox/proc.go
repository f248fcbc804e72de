package sandbox

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"runtime"
	"strings"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"golang.org/x/sync/semaphore"
)

// Cmd configures a single guest instantiation.
type Cmd struct {
	RID            RID
	Args, Env      []string
	Stdout, Stderr io.Writer
	FS             fs.FS
}

// Instantiate binds cmd to a compiled module.  The guest gets the
// host's wall clock, nanosleep, and crypto/rand, so a WASI workload
// that reads the time or sleeps behaves as it would on bare metal.
// Start functions are stripped; call Start on the returned Guest.
func (cmd Cmd) Instantiate(ctx context.Context, r wazero.Runtime, cm wazero.CompiledModule) (*Guest, error) {
	mc := wazero.NewModuleConfig().
		WithName(cmd.RID.String()).
		WithArgs(cmd.Args...).
		WithEnv("MARGO_RID", cmd.RID.String()).
		WithRandSource(rand.Reader).
		WithOsyield(runtime.Gosched).
		WithSysNanosleep().
		WithSysNanotime().
		WithSysWalltime().
		WithStartFunctions()

	if cmd.Stdout != nil {
		mc = mc.WithStdout(cmd.Stdout)
	}
	if cmd.Stderr != nil {
		mc = mc.WithStderr(cmd.Stderr)
	}
	if cmd.FS != nil {
		mc = mc.WithFS(cmd.FS)
	}

	mod, err := r.InstantiateModule(ctx, cm, cmd.WithEnv(mc))
	if err != nil {
		return nil, err
	}

	return &Guest{
		mod: mod,
		sem: semaphore.NewWeighted(1),
	}, nil
}

// WithEnv copies cmd.Env onto mc.  Entries that fail SplitEnv are
// logged and skipped.
func (cmd Cmd) WithEnv(mc wazero.ModuleConfig) wazero.ModuleConfig {
	for _, s := range cmd.Env {
		k, v, ok := SplitEnv(s)
		if !ok {
			slog.Warn("ignored unparsable environment variable",
				"var", s)
			continue
		}

		mc = mc.WithEnv(k, v)
	}

	return mc
}

// SplitEnv splits a "key=value" entry.  A missing '=' or an empty key
// makes the entry unparsable.
func SplitEnv(s string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(s, "=")
	if !ok || key == "" {
		return "", "", false
	}

	return key, value, true
}

// Guest is an instantiated module.  Calls into it are serialized; the
// demo workload is strictly sequential and concurrent entry would
// violate that.
type Guest struct {
	mod api.Module
	sem *semaphore.Weighted
}

func (g *Guest) String() string {
	return g.mod.Name()
}

func (g *Guest) Close(ctx context.Context) error {
	return g.mod.Close(ctx)
}

// Start runs the guest's WASI entry point to completion.  Use
// ExitCode to recover the exit status from the returned error.
func (g *Guest) Start(ctx context.Context) error {
	return g.Call(ctx, "_start")
}

// Call invokes an exported nullary function.
func (g *Guest) Call(ctx context.Context, name string) error {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer g.sem.Release(1)

	fn := g.mod.ExportedFunction(name)
	if fn == nil {
		return fmt.Errorf("missing export: %s", name)
	}

	_, err := fn.Call(ctx)
	return err
}
