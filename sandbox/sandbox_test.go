package sandbox_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/margo/wasm-demo/sandbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero/sys"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	t.Run("NilError", func(t *testing.T) {
		code, ok := sandbox.ExitCode(nil)
		require.True(t, ok)
		require.Zero(t, code)
	})

	t.Run("CleanExit", func(t *testing.T) {
		code, ok := sandbox.ExitCode(sys.NewExitError(0))
		require.True(t, ok)
		require.Zero(t, code)
	})

	t.Run("NonZeroExit", func(t *testing.T) {
		code, ok := sandbox.ExitCode(sys.NewExitError(3))
		require.True(t, ok)
		require.Equal(t, uint32(3), code)
	})

	t.Run("WrappedExit", func(t *testing.T) {
		err := fmt.Errorf("start: %w", sys.NewExitError(7))
		code, ok := sandbox.ExitCode(err)
		require.True(t, ok)
		require.Equal(t, uint32(7), code)
	})

	t.Run("Trap", func(t *testing.T) {
		_, ok := sandbox.ExitCode(errors.New("unreachable"))
		require.False(t, ok)
	})
}

func TestSplitEnv(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name, in   string
		key, value string
		ok         bool
	}{
		{name: "basic", in: "FOO=bar", key: "FOO", value: "bar", ok: true},
		{name: "empty value", in: "FOO=", key: "FOO", ok: true},
		{name: "value with equals", in: "FOO=a=b", key: "FOO", value: "a=b", ok: true},
		{name: "no separator", in: "FOO"},
		{name: "empty key", in: "=bar"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			k, v, ok := sandbox.SplitEnv(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, k)
			assert.Equal(t, tt.value, v)
		})
	}
}
