// Package urlcheck probes externally hosted media URLs for reachability.
package urlcheck

import (
	"net/http"
	"time"
)

// Checker classifies a URL as reachable or not. Implementations must collapse
// every failure mode (timeout, DNS, HTTP error) into false.
type Checker interface {
	Check(url string) bool
}

type httpChecker struct {
	client *http.Client
}

// NewChecker returns a Checker backed by an HTTP client with a 5 second
// timeout. A URL counts as reachable only on a success status.
func NewChecker() Checker {
	return &httpChecker{
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *httpChecker) Check(url string) bool {
	resp, err := c.client.Get(url)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
