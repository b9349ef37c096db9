package check_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/isdomain/internal/check"
	"github.com/tbckr/isdomain/internal/testutil"
)

func TestRun_Valid(t *testing.T) {
	svc := check.NewService(testutil.NopLogger(), check.Options{})
	result, err := svc.Run(context.Background(), "https://WWW.Example.com:9000/x")
	require.NoError(t, err)

	assert.Equal(t, "https://WWW.Example.com:9000/x", result.Input)
	assert.Equal(t, "www.example.com", result.Hostname)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Reason)
}

func TestRun_Invalid(t *testing.T) {
	svc := check.NewService(testutil.NopLogger(), check.Options{})
	tests := []struct {
		input  string
		reason string
	}{
		{"", "empty input"},
		{"http:///", "no hostname"},
		{"http://localhost", "missing dot"},
		{"-hyphen.com", "malformed"},
		{strings.Repeat("a", 64) + ".com", "label too long"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			result, err := svc.Run(context.Background(), tc.input)
			require.NoError(t, err)
			assert.False(t, result.Valid)
			assert.Equal(t, tc.reason, result.Reason)
		})
	}
}

func TestRun_Refang(t *testing.T) {
	plain := check.NewService(testutil.NopLogger(), check.Options{})
	refang := check.NewService(testutil.NopLogger(), check.Options{Refang: true})

	r, err := plain.Run(context.Background(), "hxxps://example[.]com")
	require.NoError(t, err)
	assert.False(t, r.Valid)

	r, err = refang.Run(context.Background(), "hxxps://example[.]com")
	require.NoError(t, err)
	assert.True(t, r.Valid)
	assert.Equal(t, "hxxps://example[.]com", r.Input, "input is reported as given")
	assert.Equal(t, "example.com", r.Hostname)
}

func TestRun_ContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := check.NewService(testutil.NopLogger(), check.Options{})
	_, err := svc.Run(ctx, "example.com")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_LogsDebug(t *testing.T) {
	logger, buf := testutil.BufferLogger()
	svc := check.NewService(logger, check.Options{})
	_, err := svc.Run(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "hostname=example.com")
	assert.Contains(t, buf.String(), "valid=true")
}

func TestRunValue(t *testing.T) {
	svc := check.NewService(testutil.NopLogger(), check.Options{})

	r, err := svc.RunValue(context.Background(), "example.com")
	require.NoError(t, err)
	assert.True(t, r.Valid)

	for _, v := range []any{json.Number("123"), float64(123), nil, true, []any{"example.com"}} {
		r, err := svc.RunValue(context.Background(), v)
		require.NoError(t, err)
		assert.False(t, r.Valid, "%#v", v)
		assert.Equal(t, check.ReasonNotString, r.Reason)
	}

	r, err = svc.RunValue(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "null", r.Input)
}

func TestExtract(t *testing.T) {
	svc := check.NewService(testutil.NopLogger(), check.Options{Refang: true})
	e := svc.Extract("hxxp://Example[.]COM:80/path")
	assert.Equal(t, "hxxp://Example[.]COM:80/path", e.Input)
	assert.Equal(t, "example.com", e.Hostname)
}
