// SPDX-License-Identifier: MIT

package logging_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gldemo/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	l, err := logging.New("debug", logging.EncodingConsole)
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = logging.New("warn", logging.EncodingJSON)
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	_, err := logging.New("loud", logging.EncodingJSON)
	require.Error(t, err)

	_, err = logging.New("info", "xml")
	require.Error(t, err)
}

func TestOrNop(t *testing.T) {
	t.Parallel()

	require.NotNil(t, logging.OrNop(nil))
	l := zap.NewExample()
	require.Same(t, l, logging.OrNop(l))
}
