package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const fetchUserAgent = "gfwlist2x/" + version

// Fetcher downloads the encoded GFWList from a list of mirrors
type Fetcher struct {
	client  *http.Client
	limiter *RateLimiter
	mirrors []string
	logger  *log.Logger
}

// NewFetcher creates a fetcher over the configured mirrors, falling back
// to the default mirror list
func NewFetcher(config *Config, logger *log.Logger) *Fetcher {
	var mirrors []string
	if config.Mirrors != "" {
		for _, url := range strings.Split(config.Mirrors, ",") {
			url = strings.TrimSpace(url)
			if url != "" {
				mirrors = append(mirrors, url)
			}
		}
	}
	if len(mirrors) == 0 {
		mirrors = GetDefaultMirrors()
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
		limiter: NewRateLimiter(defaultFetchRPS),
		mirrors: mirrors,
		logger:  logger,
	}
}

// Fetch tries every mirror in order and returns the first non-empty body.
// Individual mirror failures are logged and skipped; the error is only
// returned once every mirror has been exhausted.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	for _, url := range f.mirrors {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		f.logger.Printf("downloading gfwlist from %s", url)
		data, err := f.fetchMirror(ctx, url)
		if err != nil {
			f.logger.Printf("download %s failed: %v", url, err)
			continue
		}
		if len(data) == 0 {
			f.logger.Printf("download %s returned an empty body", url)
			continue
		}
		return data, nil
	}

	return nil, fmt.Errorf("failed to download gfwlist from all %d mirrors", len(f.mirrors))
}

// fetchMirror downloads the list from a single mirror
func (f *Fetcher) fetchMirror(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", fetchUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// DecodeList decodes the base64 transport encoding into plain text.
// Mirrors wrap the blob at arbitrary widths, so whitespace is stripped
// before decoding.
func DecodeList(raw []byte) (string, error) {
	blob := strings.Join(strings.Fields(string(raw)), "")
	text, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("failed to decode gfwlist: %v", err)
	}
	return string(text), nil
}
