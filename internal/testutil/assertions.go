package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertRendered checks that the run succeeded and produced exactly the
// given lines, in order.
func AssertRendered(t *testing.T, result *HarnessResult, lines ...string) {
	t.Helper()

	require.NoError(t, result.Err, "run failed; logs:\n%s", result.LogOutput)
	require.Equal(t, lines, result.Lines())
}

// AssertLogged checks that the log output contains substr.
func AssertLogged(t *testing.T, result *HarnessResult, substr string) {
	t.Helper()

	require.True(t,
		strings.Contains(result.LogOutput, substr),
		"expected %q in log output:\n%s", substr, result.LogOutput,
	)
}
