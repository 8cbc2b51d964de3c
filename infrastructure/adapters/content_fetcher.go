package adapters

import (
	"fmt"
	"io"
	"net/http"

	"podcast-generation-service/application/ports/outbound"
)

// ContentFetcher executes an HTTP request and hands back the response body
// stream. Timeouts are the injected client's concern.
type ContentFetcher interface {
	FetchStream(req *http.Request) (io.ReadCloser, error)
}

type contentFetcher struct {
	client *http.Client
	logger outbound.LoggerPort
}

func NewContentFetcher(client *http.Client, logger outbound.LoggerPort) ContentFetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &contentFetcher{
		client: client,
		logger: logger,
	}
}

func (c *contentFetcher) FetchStream(req *http.Request) (io.ReadCloser, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		bodyPayload, readErr := io.ReadAll(res.Body)
		if closeErr := res.Body.Close(); closeErr != nil {
			c.logger.Error(closeErr, "Failed to close the response body")
		}
		c.logger.ErrorWithFields(readErr, "HTTP request returned non-OK status code", map[string]interface{}{
			"method":  req.Method,
			"URL":     req.URL.String(),
			"status":  res.StatusCode,
			"message": string(bodyPayload),
		})
		return nil, fmt.Errorf("HTTP request returned non-OK status code: %d", res.StatusCode)
	}

	return res.Body, nil
}
