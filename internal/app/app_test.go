package app

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TigerCipher/cpu-scheduler/internal/config"
	"github.com/TigerCipher/cpu-scheduler/internal/scheduler"
)

// safeBuffer is a thread-safe buffer for capturing log output in tests.
type safeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

const referenceCSV = `arrival,burst,priority
0,5,0
1,3,0
2,8,0
3,6,0
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func setupApp(t *testing.T, cfg Config) (*App, *bytes.Buffer, *safeBuffer) {
	t.Helper()
	appCfg, err := NewConfig(cfg)
	require.NoError(t, err)

	out, logs := &bytes.Buffer{}, &safeBuffer{}
	a, err := NewApp(out, logs, appCfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("CPUSCHED_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, out, logs
}

func TestNewConfig(t *testing.T) {
	t.Run("workload required", func(t *testing.T) {
		_, err := NewConfig(Config{})
		require.Error(t, err)
	})
	t.Run("serve without workload", func(t *testing.T) {
		cfg, err := NewConfig(Config{Serve: true})
		require.NoError(t, err)
		assert.Equal(t, AlgorithmAll, cfg.Algorithm)
	})
	t.Run("algorithm normalized", func(t *testing.T) {
		cfg, err := NewConfig(Config{WorkloadPath: "w.csv", Algorithm: " RR "})
		require.NoError(t, err)
		assert.Equal(t, "rr", cfg.Algorithm)
	})
	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := NewConfig(Config{WorkloadPath: "w.csv", Algorithm: "lottery"})
		require.ErrorIs(t, err, scheduler.ErrUnknownAlgorithm)
	})
	t.Run("negative quantum", func(t *testing.T) {
		_, err := NewConfig(Config{WorkloadPath: "w.csv", Quantum: -1})
		require.Error(t, err)
	})
}

func TestNewApp_Overrides(t *testing.T) {
	path := writeFile(t, "config.yaml", `
server:
  port: 8080
scheduler:
  round_robin:
    time_quantum: 4
log:
  level: warn
`)

	a, _, _ := setupApp(t, Config{WorkloadPath: "w.csv", ConfigPath: path})
	assert.Equal(t, 8080, a.Settings().Port)
	assert.Equal(t, int64(4), a.Settings().TimeQuantum)
	assert.Equal(t, "warn", a.Settings().LogLevel)

	a, _, _ = setupApp(t, Config{WorkloadPath: "w.csv", ConfigPath: path, Quantum: 3, Port: 9000, LogLevel: "debug", LogFormat: "json"})
	assert.Equal(t, config.Config{Port: 9000, TimeQuantum: 3, MaxDispatches: config.DefaultMaxDispatches, LogLevel: "debug", LogFormat: "json"}, a.Settings())
}

func TestNewApp_Errors(t *testing.T) {
	_, err := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, &Config{WorkloadPath: "w.csv", LogLevel: "loud"})
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = NewApp(&bytes.Buffer{}, &bytes.Buffer{}, &Config{WorkloadPath: "w.csv", ConfigPath: "missing.yaml"})
	require.Error(t, err)
}

func TestRun_SingleAlgorithm(t *testing.T) {
	path := writeFile(t, "w.csv", referenceCSV)
	a, out, _ := setupApp(t, Config{WorkloadPath: path, Algorithm: "sjf"})

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "Shortest-job-first")
	assert.Contains(t, out.String(), "5.25")
	assert.NotContains(t, out.String(), "Comparison")
}

func TestRun_AllAlgorithms(t *testing.T) {
	path := writeFile(t, "w.csv", referenceCSV)
	a, out, logs := setupApp(t, Config{WorkloadPath: path, LogLevel: "debug"})

	require.NoError(t, a.Run(context.Background()))
	for _, alg := range scheduler.Algorithms {
		assert.Contains(t, out.String(), alg.Title())
	}
	assert.Contains(t, out.String(), "Comparison")
	assert.Contains(t, logs.String(), "Workload loaded.")
}

func TestRun_QuantumPrecedence(t *testing.T) {
	hcl := `
quantum = 3
process {
  arrival = 0
  burst   = 5
}
process {
  arrival = 1
  burst   = 3
}
`
	path := writeFile(t, "w.hcl", hcl)

	a, out, _ := setupApp(t, Config{WorkloadPath: path, Algorithm: "rr"})
	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "Round-robin (quantum 3)")

	a, out, _ = setupApp(t, Config{WorkloadPath: path, Algorithm: "rr", Quantum: 5})
	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "Round-robin (quantum 5)")

	csvPath := writeFile(t, "w.csv", referenceCSV)
	a, out, _ = setupApp(t, Config{WorkloadPath: csvPath, Algorithm: "rr"})
	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "Round-robin (quantum 2)")
}

func TestRun_Errors(t *testing.T) {
	a, _, _ := setupApp(t, Config{WorkloadPath: filepath.Join(t.TempDir(), "missing.csv")})
	err := a.Run(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, "w.csv", "arrival,burst\n")
	a, _, _ = setupApp(t, Config{WorkloadPath: path, Algorithm: "fcfs"})
	err = a.Run(context.Background())
	require.ErrorIs(t, err, scheduler.ErrEmptyInput)
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestServe(t *testing.T) {
	port := freePort(t)
	a, _, logs := setupApp(t, Config{Serve: true, Port: port})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/health", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Contains(t, logs.String(), "API server starting")
}
