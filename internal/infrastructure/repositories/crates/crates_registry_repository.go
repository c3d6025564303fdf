package crates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cratesup/internal/domain/entities"
	"github.com/rios0rios0/cratesup/internal/domain/repositories"
)

// RegistryRepository implements repositories.RegistryRepository against the
// crates.io web API (`GET {base}/crates/{name}`). Alternative registries that
// expose the same API are supported through a different base URL and token.
type RegistryRepository struct {
	name      string
	baseURL   string
	token     string
	userAgent string
	client    *http.Client
}

// NewRegistryRepository creates a registry client. It fails when the base URL is
// not an absolute http(s) URL or no user agent is given.
func NewRegistryRepository(
	registry entities.RegistryConfig,
	timeout time.Duration,
	userAgent string,
) (repositories.RegistryRepository, error) {
	parsed, err := url.Parse(registry.URL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("invalid URL %q for registry %q", registry.URL, registry.Name)
	}
	if strings.TrimSpace(userAgent) == "" {
		return nil, errors.New("a user agent is required to query the registry")
	}

	return &RegistryRepository{
		name:      registry.Name,
		baseURL:   strings.TrimSuffix(registry.URL, "/"),
		token:     registry.Token,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}, nil
}

func (it *RegistryRepository) Name() string { return it.name }

// FetchSnapshot queries the registry once for the crate's newest versions.
func (it *RegistryRepository) FetchSnapshot(
	ctx context.Context,
	crate string,
) (entities.RegistrySnapshot, error) {
	endpoint := fmt.Sprintf("%s/crates/%s", it.baseURL, url.PathEscape(crate))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.RegistrySnapshot{}, fmt.Errorf(
			"%w: failed to create request: %v", entities.ErrRegistryLookupFailed, err,
		)
	}
	req.Header.Set("User-Agent", it.userAgent)
	req.Header.Set("Accept", "application/json")
	if it.token != "" {
		req.Header.Set("Authorization", it.token)
	}

	logger.Debugf("[%s] GET %s", it.name, endpoint)

	resp, err := it.client.Do(req)
	if err != nil {
		return entities.RegistrySnapshot{}, fmt.Errorf("%w: %v", entities.ErrRegistryLookupFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return entities.RegistrySnapshot{}, fmt.Errorf(
			"%w: %w: %s", entities.ErrRegistryLookupFailed, entities.ErrCrateNotFound, crate,
		)
	case resp.StatusCode != http.StatusOK:
		return entities.RegistrySnapshot{}, fmt.Errorf(
			"%w: unexpected status code: %d", entities.ErrRegistryLookupFailed, resp.StatusCode,
		)
	}

	var payload crateResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return entities.RegistrySnapshot{}, fmt.Errorf(
			"%w: failed to parse response: %v", entities.ErrRegistryLookupFailed, decodeErr,
		)
	}
	if payload.Crate.MaxVersion == "" {
		return entities.RegistrySnapshot{}, fmt.Errorf(
			"%w: response for %s has no max_version", entities.ErrRegistryLookupFailed, crate,
		)
	}

	snapshot := entities.RegistrySnapshot{MaxVersion: payload.Crate.MaxVersion}
	if stable := payload.Crate.MaxStableVersion; stable != nil && *stable != "" {
		snapshot.MaxStableVersion = stable
	}
	return snapshot, nil
}

type crateResponse struct {
	Crate struct {
		Name             string  `json:"name"`
		MaxVersion       string  `json:"max_version"`
		MaxStableVersion *string `json:"max_stable_version"`
	} `json:"crate"`
}
