package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// fetchJSON issues a GET request to the specified URI and decodes the JSON response.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func fetchJSON[T any](c *ClientImpl, ctx context.Context, uri string) (*FetchJSONResult[T], error) {
	return doJSON[T](c, ctx, http.MethodGet, uri, nil)
}

// postJSON issues a POST request with a JSON body to the specified URI
// and decodes the JSON response.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func postJSON[T any](c *ClientImpl, ctx context.Context, uri string, body any) (*FetchJSONResult[T], error) {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize request body: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	return doJSON[T](c, ctx, http.MethodPost, uri, reader)
}

// doJSON performs the HTTP exchange. The response body is read fully and
// kept in the result so error paths can surface the raw backend payload.
// For non-2xx statuses the body is still decoded on a best-effort basis:
// backends put explanatory message fields into error responses too.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func doJSON[T any](
	c *ClientImpl,
	ctx context.Context,
	method string,
	uri string,
	body io.Reader,
) (*FetchJSONResult[T], error) {
	route, err := url.JoinPath(c.baseURL, uri)
	if err != nil {
		return nil, err
	}

	if body == nil {
		body = http.NoBody
	}

	request, err := http.NewRequestWithContext(ctx, method, route, body)
	if err != nil {
		return nil, err
	}

	request.Header.Set("Accept", "application/json")

	if method == http.MethodPost {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return &FetchJSONResult[T]{StatusCode: response.StatusCode}, err
	}

	result := &FetchJSONResult[T]{
		StatusCode: response.StatusCode,
		Raw:        raw,
	}

	// An empty body is legal (the logout endpoint returns one); it just
	// leaves Data nil.
	if len(raw) > 0 {
		var payload T
		if decodeErr := json.Unmarshal(raw, &payload); decodeErr == nil {
			result.Data = &payload
		} else if isSuccessStatus(response.StatusCode) {
			return result, decodeErr
		}
	}

	if !isSuccessStatus(response.StatusCode) {
		return result, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	return result, nil
}

// isSuccessStatus reports whether the status code is in the 2xx range.
func isSuccessStatus(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}
