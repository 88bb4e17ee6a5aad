//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Endpoint   string
	TenantGUID string
	AccessKey  string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Endpoint:   os.Getenv("LITEGRAPH_ENDPOINT"),
		TenantGUID: os.Getenv("LITEGRAPH_TENANT"),
		AccessKey:  os.Getenv("LITEGRAPH_ACCESS_KEY"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("LITEGRAPH_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the litegraph binary
func getBinaryPath() string {
	if path := os.Getenv("LITEGRAPH_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../litegraph", "./litegraph", "../litegraph"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "litegraph"
}

// SkipIfMissingConfig skips test if the server is not configured
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Endpoint == "" || config.TenantGUID == "" {
		t.Skip("LITEGRAPH_ENDPOINT and LITEGRAPH_TENANT not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips test if the CLI has not been built
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("litegraph binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// LibraryConfig returns a client configuration for the test server
func (config *TestConfig) LibraryConfig() *litegraph.Config {
	return &litegraph.Config{
		Endpoint:   config.Endpoint,
		TenantGUID: config.TenantGUID,
		AccessKey:  config.AccessKey,
	}
}

// CommandRunner runs the litegraph CLI against the test server
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{config: config, t: t}
}

// Run executes a litegraph command and returns its output. Scope flags are
// taken from the test configuration and no config file is read.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	full := append([]string{
		"--config", os.DevNull,
		"--endpoint", runner.config.Endpoint,
		"--tenant", runner.config.TenantGUID,
		"--access-key", runner.config.AccessKey,
	}, args...)

	// #nosec G204 -- test binary and arguments are controlled by the test
	cmd := exec.Command(runner.config.BinaryPath, full...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a command with JSON output and decodes the result
func (runner *CommandRunner) RunJSON(v interface{}, args ...string) {
	runner.t.Helper()

	stdout, stderr, err := runner.Run(append(args, "--output", "json")...)
	require.NoError(runner.t, err, "command failed: %s", stderr)
	require.NoError(runner.t, json.Unmarshal([]byte(stdout), v), "invalid JSON output: %s", stdout)
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
