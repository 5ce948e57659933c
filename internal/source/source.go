// Package source opens input sources for counting;
// a source is standard input ("-"), an HTTP(S) URL, or a local file path.
package source

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"
)

// SizeUnknown is the size hint for sources with no reliable length metadata
// (standard input, pipes, URLs).
const SizeUnknown int64 = -1

// HTTP client timeout configuration; currently set to reasonable defaults
// TODO: make this configurable via command-line flags
const HTTPRequestTimeout = 30 * time.Second

// specific timeout thresholds (based on HTTPRequestTimeout)
var (
	HTTPDialTimeout           = HTTPRequestTimeout / 6 // ~17%, max time to wait for network connection
	HTTPTLSTimeout            = HTTPRequestTimeout / 6 // ~17%, max time to wait for TLS handshake
	HTTPResponseHeaderTimeout = HTTPRequestTimeout / 2 // 50%, max time for response headers (usually the longest phase)
)

// httpClient is a shared HTTP client with appropriate timeouts to prevent indefinite hangs.
// this should be safe for concurrent use across multiple goroutines.
var httpClient = &http.Client{
	Timeout: HTTPRequestTimeout,
	Transport: &http.Transport{
		Dial: (&net.Dialer{
			Timeout: HTTPDialTimeout,
		}).Dial,
		TLSHandshakeTimeout:   HTTPTLSTimeout,
		ResponseHeaderTimeout: HTTPResponseHeaderTimeout,
		// disable keep-alives to avoid connection reuse issues
		DisableKeepAlives: true,
	},
}

// Open returns a reader for the named source plus a size hint: the total
// stream length in bytes when it is known up front, or SizeUnknown. Only a
// regular file's metadata size is treated as reliable; URLs report
// SizeUnknown since Content-Length is advisory.
//
// It supports three types of sources:
//   - "-" (or the empty string) reads from standard input
//   - URLs starting with "http://" or "https://" are fetched via HTTP
//   - everything else is treated as a local file path
//
// ctx allows for cancellation and timeout control of HTTP fetches.
func Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	switch {
	case name == "-" || name == "":
		// stdin is not closed when the returned reader is
		return io.NopCloser(os.Stdin), SizeUnknown, nil
	case strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://"):
		rc, err := openURL(ctx, name)
		return rc, SizeUnknown, err
	default:
		return openFile(name)
	}
}

// openURL retrieves content from an HTTP or HTTPS URL using a client with timeout configuration
// ctx allows for cancellation and timeout control of HTTP requests.
func openURL(ctx context.Context, url string) (io.ReadCloser, error) {
	// create request with User-Agent and context
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for URL %q: %w", url, err)
	}
	req.Header.Set("User-Agent", "tally/0.1")

	// execute request using shared client
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %q: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP request failed for URL %q: status %d %s", url, resp.StatusCode, resp.Status)
	}

	return resp.Body, nil
}

// openFile opens a local file for reading with better error messages.
// The size hint is taken from metadata for regular files only; for devices,
// FIFOs and the like the length is not knowable up front.
func openFile(path string) (io.ReadCloser, int64, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, 0, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to access file %q: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open file %q: %w", path, err)
	}

	hint := SizeUnknown
	if fileInfo.Mode().IsRegular() {
		hint = fileInfo.Size()
	}

	return f, hint, nil
}
