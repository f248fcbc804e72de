// Package sandbox hosts compiled WASI guests under wazero.
package sandbox

import (
	"context"
	"errors"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"
	"go.uber.org/multierr"
)

// Config describes the runtime a guest executes in.
type Config struct {
	Debug bool // keep DWARF debug info in compiled modules
}

// NewRuntime builds a wazero runtime with the WASI preview-1 host
// module already instantiated.  Closing the runtime tears down WASI
// with it.
func (cfg Config) NewRuntime(ctx context.Context) (wazero.Runtime, error) {
	r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig().
		WithDebugInfoEnabled(cfg.Debug).
		WithCloseOnContextDone(true))

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		return nil, multierr.Append(err, r.Close(ctx))
	}

	return r, nil
}

// ExitCode maps the error returned by a guest's start function to a
// process exit status.  It reports code 0 for a nil error, the guest's
// status when it terminated through proc_exit, and ok=false when the
// guest trapped for any other reason.
func ExitCode(err error) (code uint32, ok bool) {
	if err == nil {
		return 0, true
	}

	var exit *sys.ExitError
	if errors.As(err, &exit) {
		return exit.ExitCode(), true
	}

	return 0, false
}
