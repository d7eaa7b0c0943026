package utils

import (
	"io"
	"net/http"

	"github.com/pixelforge/cloudpix/types"
)

// Fetch performs a single request/response exchange and returns the raw
// body. Non-2xx statuses become *types.APIError carrying the body text;
// connection-level failures are returned unchanged. No retries happen at
// this layer.
func Fetch(client *http.Client, req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &types.APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	return body, nil
}
