// Package exec implements `margo exec`, which runs a compiled guest
// module inside the WASI sandbox.
package exec

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shirou/gopsutil/v3/process"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/margo/wasm-demo/sandbox"
)

func Command() *cli.Command {
	return &cli.Command{
		// margo exec <module.wasm> [-- guest args...]
		////
		Name:      "exec",
		Usage:     "execute a compiled guest module in the WASI sandbox",
		ArgsUsage: "<module.wasm> [-- guest args...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "env",
				EnvVars: []string{"MARGO_ENV"},
				Usage:   "guest environment `k=v` pairs",
			},
			&cli.BoolFlag{
				Name:    "wasm-debug",
				EnvVars: []string{"MARGO_WASM_DEBUG"},
				Usage:   "enable wasm debug symbols",
			},
		},
		Action: Main,
	}
}

func Main(c *cli.Context) (err error) {
	args := ParseArgs(c.Args().Slice())
	if len(args.Host) == 0 {
		return errors.New("missing module path")
	}
	name := args.Host[0]

	bytecode, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	r, err := sandbox.Config{
		Debug: c.Bool("wasm-debug"),
	}.NewRuntime(c.Context)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, r.Close(c.Context))
	}()

	cm, err := r.CompileModule(c.Context, bytecode)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, cm.Close(c.Context))
	}()

	guest, err := sandbox.Cmd{
		RID:    sandbox.NewRID(),
		Args:   append([]string{filepath.Base(name)}, args.Guest...),
		Env:    c.StringSlice("env"),
		Stdout: c.App.Writer,
		Stderr: c.App.ErrWriter,
	}.Instantiate(c.Context, r, cm)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, guest.Close(c.Context))
	}()

	slog.DebugContext(c.Context, "guest instantiated",
		"rid", guest.String(),
		"module", name)

	runErr := guest.Start(c.Context)
	code, ok := sandbox.ExitCode(runErr)
	if !ok {
		return runErr // trapped rather than exited; report as-is
	}

	reportMemory(c)

	if code != 0 {
		return cli.Exit("", int(code))
	}

	return nil
}

// reportMemory logs the host's resident set after the guest exits.
// The guest's own banner claims a fixed footprint; this is the
// measured counterpart, and it goes to stderr so the transcript on
// stdout stays byte-exact.
func reportMemory(c *cli.Context) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}

	mi, err := p.MemoryInfo()
	if err != nil {
		return
	}

	slog.DebugContext(c.Context, "guest exited",
		"rss", mi.RSS)
}
