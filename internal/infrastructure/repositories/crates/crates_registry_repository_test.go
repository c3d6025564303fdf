//go:build unit

package crates_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cratesup/internal/domain/entities"
	"github.com/rios0rios0/cratesup/internal/infrastructure/repositories/crates"
)

func newRegistry(t *testing.T, handler http.HandlerFunc, token string) (*httptest.Server, entities.RegistryConfig) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, entities.RegistryConfig{Name: "test", URL: server.URL + "/api/v1", Token: token}
}

func TestRegistryRepositoryFetchSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("should decode the latest versions and send the user agent", func(t *testing.T) {
		t.Parallel()

		// given
		var gotPath, gotAgent, gotAuth string
		_, cfg := newRegistry(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAgent = r.Header.Get("User-Agent")
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{"crate":{"name":"serde","max_version":"1.1.0-rc.1","max_stable_version":"1.0.200"}}`))
		}, "")
		registry, err := crates.NewRegistryRepository(cfg, time.Second, "cratesup-test")
		require.NoError(t, err)

		// when
		snapshot, err := registry.FetchSnapshot(context.Background(), "serde")

		// then
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/crates/serde", gotPath)
		assert.Equal(t, "cratesup-test", gotAgent)
		assert.Empty(t, gotAuth)
		assert.Equal(t, "1.1.0-rc.1", snapshot.MaxVersion)
		require.NotNil(t, snapshot.MaxStableVersion)
		assert.Equal(t, "1.0.200", *snapshot.MaxStableVersion)
		assert.Equal(t, "test", registry.Name())
	})

	t.Run("should send the token of an alternative registry", func(t *testing.T) {
		t.Parallel()

		// given
		var gotAuth string
		_, cfg := newRegistry(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{"crate":{"max_version":"0.1.0","max_stable_version":"0.1.0"}}`))
		}, "secret")
		registry, err := crates.NewRegistryRepository(cfg, time.Second, "cratesup-test")
		require.NoError(t, err)

		// when
		_, err = registry.FetchSnapshot(context.Background(), "private")

		// then
		require.NoError(t, err)
		assert.Equal(t, "secret", gotAuth)
	})

	t.Run("should treat a missing or empty stable version as absent", func(t *testing.T) {
		t.Parallel()

		for _, body := range []string{
			`{"crate":{"max_version":"0.1.0-alpha.3"}}`,
			`{"crate":{"max_version":"0.1.0-alpha.3","max_stable_version":null}}`,
			`{"crate":{"max_version":"0.1.0-alpha.3","max_stable_version":""}}`,
		} {
			// given
			payload := body
			_, cfg := newRegistry(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(payload))
			}, "")
			registry, err := crates.NewRegistryRepository(cfg, time.Second, "cratesup-test")
			require.NoError(t, err)

			// when
			snapshot, err := registry.FetchSnapshot(context.Background(), "early")

			// then
			require.NoError(t, err, body)
			assert.Equal(t, "0.1.0-alpha.3", snapshot.MaxVersion, body)
			assert.Nil(t, snapshot.MaxStableVersion, body)
		}
	})

	t.Run("should fail with ErrCrateNotFound on 404", func(t *testing.T) {
		t.Parallel()

		// given
		_, cfg := newRegistry(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}, "")
		registry, err := crates.NewRegistryRepository(cfg, time.Second, "cratesup-test")
		require.NoError(t, err)

		// when
		_, err = registry.FetchSnapshot(context.Background(), "missing")

		// then
		require.ErrorIs(t, err, entities.ErrRegistryLookupFailed)
		require.ErrorIs(t, err, entities.ErrCrateNotFound)
	})

	t.Run("should fail with ErrRegistryLookupFailed on server errors and bad payloads", func(t *testing.T) {
		t.Parallel()

		handlers := map[string]http.HandlerFunc{
			"server error": func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			"bad json": func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"crate":`))
			},
			"no max version": func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"crate":{"name":"serde"}}`))
			},
		}

		for name, handler := range handlers {
			// given
			_, cfg := newRegistry(t, handler, "")
			registry, err := crates.NewRegistryRepository(cfg, time.Second, "cratesup-test")
			require.NoError(t, err)

			// when
			_, err = registry.FetchSnapshot(context.Background(), "serde")

			// then
			require.ErrorIs(t, err, entities.ErrRegistryLookupFailed, name)
			assert.NotErrorIs(t, err, entities.ErrCrateNotFound, name)
		}
	})

	t.Run("should fail with ErrRegistryLookupFailed when the request times out", func(t *testing.T) {
		t.Parallel()

		// given
		release := make(chan struct{})
		_, cfg := newRegistry(t, func(_ http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}, "")
		t.Cleanup(func() { close(release) })
		registry, err := crates.NewRegistryRepository(cfg, 50*time.Millisecond, "cratesup-test")
		require.NoError(t, err)

		// when
		_, err = registry.FetchSnapshot(context.Background(), "slow")

		// then
		require.ErrorIs(t, err, entities.ErrRegistryLookupFailed)
	})
}

func TestNewRegistryRepository(t *testing.T) {
	t.Parallel()

	t.Run("should reject invalid base URLs", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "not a url", "ftp://registry.example.com", "/relative/path"} {
			// when
			_, err := crates.NewRegistryRepository(
				entities.RegistryConfig{Name: "bad", URL: raw}, time.Second, "cratesup-test",
			)

			// then
			assert.Error(t, err, raw)
		}
	})

	t.Run("should require a user agent", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := crates.NewRegistryRepository(
			entities.RegistryConfig{Name: entities.DefaultRegistryName, URL: entities.DefaultRegistryURL},
			time.Second,
			" ",
		)

		// then
		require.Error(t, err)
	})
}
