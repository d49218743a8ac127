package notes_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/notes/pkg/notesdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for notes service end-to-end tests.
 * This includes container setup, account helpers, and assertions.
 */

const (
	testImageName = "notes-service-test:latest"

	testJWTSecret = "e2e-secret-that-is-at-least-32-bytes-long"
	testPassword  = "hunter2"
)

// relaxedRateLimits raises the limits so tests making many rapid requests
// do not trip them.
var relaxedRateLimits = map[string]string{
	"RATELIMIT_STRICT_REQUESTS":   "1000",
	"RATELIMIT_STRICT_WINDOW_SEC": "60",
	"RATELIMIT_STRICT_BURST":      "1000",
	"RATELIMIT_MODERATE_REQUESTS": "1000",
	"RATELIMIT_MODERATE_BURST":    "1000",
}

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete. Everything is skipped unless NOTES_E2E=1.
func TestMain(m *testing.M) {
	if os.Getenv("NOTES_E2E") != "1" {
		fmt.Fprintln(os.Stdout, "skipping notes e2e tests, set NOTES_E2E=1 to run them")
		os.Exit(0)
	}

	fmt.Fprintf(os.Stdout, "Building Notes Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Notes Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/notes/Dockerfile",
		"--build-arg", "VERSION=e2e",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

type containerOptions struct {
	env      map[string]string
	networks []string
}

// startNotesContainer runs the service image and returns its base URL.
func startNotesContainer(t *testing.T, opts containerOptions) string {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"ENV":        "development",
		"JWT_SECRET": testJWTSecret,
		"JWT_ISSUER": "notes-e2e",
		"LOG_LEVEL":  "info",
		"LOG_FORMAT": "json",
	}
	for k, v := range opts.env {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"3000/tcp"},
		Env:          env,
		Networks:     opts.networks,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("3000/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "3000")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// setupNotesContainer starts the service on SQLite with relaxed rate limits.
func setupNotesContainer(t *testing.T) string {
	t.Helper()
	return startNotesContainer(t, containerOptions{env: relaxedRateLimits})
}

// setupNotesContainerWithDefaultRateLimits starts the service with the
// production rate limits, for tests that check limiting itself.
func setupNotesContainerWithDefaultRateLimits(t *testing.T) string {
	t.Helper()
	return startNotesContainer(t, containerOptions{})
}

// setupNotesWithPostgres starts a postgres container and the service
// pointed at it over a private network.
func setupNotesWithPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	nw, err := network.New(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := nw.Remove(ctx); err != nil {
			t.Logf("failed to remove network: %v", err)
		}
	})

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: "postgres:16-alpine",
			Env: map[string]string{
				"POSTGRES_USER":     "notes",
				"POSTGRES_PASSWORD": "notes",
				"POSTGRES_DB":       "notes",
			},
			Networks:       []string{nw.Name},
			NetworkAliases: map[string][]string{nw.Name: {"db"}},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pg.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres: %v", err)
		}
	})

	env := map[string]string{
		"DATABASE_DRIVER": "postgres",
		"DATABASE_URL":    "postgres://notes:notes@db:5432/notes?sslmode=disable",
	}
	for k, v := range relaxedRateLimits {
		env[k] = v
	}

	return startNotesContainer(t, containerOptions{env: env, networks: []string{nw.Name}})
}

// uniqueUsername returns a username valid for the service's pattern.
func uniqueUsername(prefix string) string {
	suffix := strings.ToLower(fmt.Sprintf("%x", time.Now().UnixNano()))
	name := prefix + "_" + suffix
	if len(name) >= 20 {
		name = name[:19]
	}
	return name
}

// registerClient creates an account and returns a signed-in client.
func registerClient(t *testing.T, baseURL, fullName string) (*notesdk.SDKClient, *notesdk.User) {
	t.Helper()

	client := notesdk.NewSDKClient(baseURL)
	user, err := client.Register(t.Context(), notesdk.RegisterRequest{
		FullName: fullName,
		Username: uniqueUsername("u"),
		Password: testPassword,
	})
	require.NoError(t, err, "Register should succeed")
	require.True(t, client.HasSession(), "Register should set the session cookie")

	return client, user
}

// assertStatus verifies err is an API failure with the given status and message.
func assertStatus(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)

	var apiErr *notesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode, "unexpected status, message %q", apiErr.Message)
	if message != "" {
		require.Equal(t, message, apiErr.Message)
	}
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *notesdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
