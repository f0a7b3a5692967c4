package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	// a nil slice would make cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootPricesFromStdin(t *testing.T) {
	out, errOut, err := execute(t, "100\n80\n0.05\n0\n0.2\n")
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Equal(t, "Stock Price:\nStrike:\nInterest Rate:\nTime to Maturity:\nVolatility:\nCall = 20\nPut = 0\n", out)
}

func TestRootReportsMalformedInputOnStderr(t *testing.T) {
	out, errOut, err := execute(t, "100\nabc\n")
	require.Error(t, err)
	assert.Contains(t, errOut, `Error: Strike: "abc" is not a number`)
	assert.NotContains(t, out, "Call =")
	assert.NotContains(t, errOut, "Usage:")
}

func TestRootReportsDomainViolation(t *testing.T) {
	_, errOut, err := execute(t, "100\n100\n0.05\n-1\n0.2\n")
	require.Error(t, err)
	assert.Contains(t, errOut, "Error: Time to Maturity must not be negative")
}

func TestRootRejectsArguments(t *testing.T) {
	_, _, err := execute(t, "", "extra")
	require.Error(t, err)
}
