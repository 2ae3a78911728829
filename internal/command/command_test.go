package command_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/261018-go-pkg-envjson/internal/command"
	"github.com/lwmacct/261018-go-pkg-envjson/pkg/dotenv"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: command.ExitOK},
		{name: "source not found", err: fmt.Errorf("%w: .env", dotenv.ErrSourceNotFound), want: command.ExitNotFound},
		{name: "write failure", err: fmt.Errorf("%w: out.json: denied", dotenv.ErrWriteFailure), want: command.ExitWrite},
		{name: "malformed line", err: fmt.Errorf("parse .env: %w", &dotenv.LineError{Line: 2, Err: dotenv.ErrMalformedLine}), want: command.ExitMalformed},
		{name: "other", err: errors.New("boom"), want: command.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, command.ExitCode(tt.err))
		})
	}
}

func TestSetupLogger(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	var buf bytes.Buffer
	require.NoError(t, command.SetupLogger(&buf, "warn"))
	slog.Info("hidden")
	slog.Warn("shown", "line", 3)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown line=3")

	require.Error(t, command.SetupLogger(&buf, "loud"))
}
