package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, logLevel,
		priceAPIURL, balanceAPIURL, walletProviderURL, httpClientTimeout,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, rateCacheExp,
		sessionSecret, sessionExp,
		kafkaBrokers, kafkaTopic, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "info", logLevel)

	assert.Contains(t, priceAPIURL, "ids=cardano")
	assert.Equal(t, "http://localhost:4000", balanceAPIURL)
	assert.Empty(t, walletProviderURL)
	assert.Equal(t, 30, httpClientTimeout)

	assert.Empty(t, redisHost)
	assert.Equal(t, 6379, redisPort)
	assert.Equal(t, 0, redisDB)
	assert.Empty(t, redisPassword)
	assert.Equal(t, 10, redisPoolSize)
	assert.Equal(t, 2, redisMinIdleConns)
	assert.Equal(t, 60, rateCacheExp)

	assert.Equal(t, "my_super_secret_key", sessionSecret)
	assert.Equal(t, 3600, sessionExp)

	assert.Empty(t, kafkaBrokers)
	assert.Equal(t, "payment-previews", kafkaTopic)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("PRICE_API_URL", "http://price.local/simple")
	os.Setenv("BALANCE_API_URL", "http://balance.local")
	os.Setenv("WALLET_PROVIDER_URL", "http://wallet.local")
	os.Setenv("HTTP_CLIENT_TIMEOUT_SECOND", "5")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")
	os.Setenv("RATE_CACHE_EXP_SECOND", "120")

	os.Setenv("SESSION_SECRET_KEY", "supersecret")
	os.Setenv("SESSION_EXP_SECOND", "300")

	os.Setenv("KAFKA_BROKERS", "kafka1:9092, kafka2:9092,")
	os.Setenv("KAFKA_TOPIC", "previews")

	appHost, appPort, logLevel,
		priceAPIURL, balanceAPIURL, walletProviderURL, httpClientTimeout,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, rateCacheExp,
		sessionSecret, sessionExp,
		kafkaBrokers, kafkaTopic, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", appHost)
	assert.Equal(t, "9090", appPort)
	assert.Equal(t, "debug", logLevel)

	assert.Equal(t, "http://price.local/simple", priceAPIURL)
	assert.Equal(t, "http://balance.local", balanceAPIURL)
	assert.Equal(t, "http://wallet.local", walletProviderURL)
	assert.Equal(t, 5, httpClientTimeout)

	assert.Equal(t, "redis.example.com", redisHost)
	assert.Equal(t, 6380, redisPort)
	assert.Equal(t, 2, redisDB)
	assert.Equal(t, "redispass", redisPassword)
	assert.Equal(t, 15, redisPoolSize)
	assert.Equal(t, 5, redisMinIdleConns)
	assert.Equal(t, 120, rateCacheExp)

	assert.Equal(t, "supersecret", sessionSecret)
	assert.Equal(t, 300, sessionExp)

	assert.Equal(t, []string{"kafka1:9092", "kafka2:9092"}, kafkaBrokers)
	assert.Equal(t, "previews", kafkaTopic)
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	resetEnv()
	os.Setenv("SESSION_EXP_SECOND", "soon")

	_, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	assert.Error(t, err)
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return strconv.Itoa(l.Addr().(*net.TCPAddr).Port)
}

func TestRun_InMemory(t *testing.T) {
	price := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"cardano":{"usd":0.5}}`)
	}))
	defer price.Close()

	balance := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"balance":12}`)
	}))
	defer balance.Close()

	port := freePort(t)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx,
			"127.0.0.1", port, "error",
			price.URL, balance.URL, "", 5,
			"", 6379, 0, "", 10, 2, 60,
			"testsecret", 60,
			nil, "payment-previews",
		)
	}()

	base := fmt.Sprintf("http://127.0.0.1:%s", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/api/v1/convert?bill=10&rate=0.5")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	resp, err := http.Post(base+"/api/v1/sessions", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Get(base + "/api/v1/session")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = http.Get(base + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("run did not stop")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}
