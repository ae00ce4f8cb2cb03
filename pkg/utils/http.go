package utils

import (
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"
)

// HTTPError is a non-2xx response from an upstream service.
type HTTPError struct {
	Service    string
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Service, e.Status, e.Body)
}

// IsClientError reports whether the upstream rejected the request itself.
func (e *HTTPError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// ReadResponse reads the body of resp and returns an *HTTPError for non-2xx statuses.
func ReadResponse(service string, resp *http.Response) ([]byte, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			Service:    service,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       truncate(string(data), 512),
		}
	}

	return data, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
