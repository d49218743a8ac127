package notesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs an HTTP request with the SDKClient's HTTP client. A
// non-nil body is encoded as JSON.
func (c *SDKClient) doRequest(
	ctx context.Context,
	method, path string,
	body any,
) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// call sends a request and unwraps the envelope into target. target may be
// nil when the caller only cares about success.
func (c *SDKClient) call(
	ctx context.Context,
	method, path string,
	body any,
	expectedStatus int,
	target any,
) (string, error) {
	resp, err := c.doRequest(ctx, method, APIPrefix+path, body)
	if err != nil {
		return "", err
	}
	return decodeEnvelope(resp, target, expectedStatus)
}

// decodeEnvelope decodes an envelope response, storing its data in target.
// It returns the envelope message.
func decodeEnvelope(resp *http.Response, target any, expectedStatus int) (string, error) {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return "", parseErrorResponse(resp, bodyBytes)
	}

	var env Envelope[json.RawMessage]
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if !env.Success {
		return "", &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if target != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, target); err != nil {
			return "", fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return env.Message, nil
}

// decodeJSON decodes a plain (non-envelope) JSON response such as the
// health probes.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
