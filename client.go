// Package cloudpix is a client for the Cloudinary image API: it uploads
// images from local paths or remote URLs and deletes stored images by
// public id or prefix. Every call is a single signed request/response
// exchange; there are no retries and no shared mutable state.
package cloudpix

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pixelforge/cloudpix/types"
	"github.com/pixelforge/cloudpix/utils"
	"github.com/pixelforge/cloudpix/vars"
)

// Client talks to the image API for a single account. Safe for concurrent
// use.
type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
	now     func() time.Time
}

// NewClient creates a client with the default transport timeout.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = vars.REQUEST_TIMEOUT
	}
	return &Client{
		cfg:     cfg,
		baseURL: vars.API_BASE_URL,
		http:    &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

// NewClientWithHTTP creates a client with a caller-supplied *http.Client.
// If httpClient is nil, the default client is used.
func NewClientWithHTTP(cfg Config, httpClient *http.Client) *Client {
	c := NewClient(cfg)
	if httpClient != nil {
		c.http = httpClient
	}
	return c
}

// SetBaseURL points the client at a custom API base, used by tests to
// target a local server.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimSuffix(u, "/")
}

// ParseSource classifies an upload target: strings with an http(s) prefix
// are remote references, any other string is a local path. Non-string
// targets are a caller error, reported as a result rather than a panic.
func ParseSource(item any) (types.Source, error) {
	s, ok := item.(string)
	if !ok {
		return types.Source{}, &types.InvalidInputError{
			Reason: fmt.Sprintf("upload target must be a string, got %T", item),
		}
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return types.Source{Kind: types.SourceURL, Value: s}, nil
	}
	return types.Source{Kind: types.SourceFile, Value: s}, nil
}

// Upload stores the image at the given local path or remote URL. opts pass
// through as upload parameters; sequence values (tags and friends) are
// comma-joined. The result carries the remote fields plus the original
// source. Two identical calls create two remote resources, the API itself
// is not idempotent for uploads.
func (c *Client) Upload(item any, opts map[string]any) (*types.UploadResult, error) {
	src, err := ParseSource(item)
	if err != nil {
		return nil, err
	}

	params := utils.Normalize(opts)
	if src.Kind == types.SourceURL {
		// The URL travels in the file field; the signer keeps any file
		// entry out of the digest.
		params["file"] = src.Value
	}
	signed := utils.Sign(params, c.cfg.APISecret, c.cfg.APIKey, c.now().Unix())

	req, err := utils.BuildUploadRequest(utils.UploadEndpoint(c.baseURL, c.cfg.CloudName), src, signed)
	if err != nil {
		return nil, err
	}

	body, err := utils.Fetch(c.http, req)
	if err != nil {
		return nil, err
	}

	return utils.MapUploadResponse(body, src.Value)
}

// Delete removes stored images. opts["type"] selects the mode: "public_id"
// (the default) deletes one asset by id, "prefix" deletes every asset whose
// id starts with the identifier. An unrecognized mode panics: it is a
// static configuration mistake, not request data.
func (c *Client) Delete(item any, opts map[string]any) (*types.DeleteResult, error) {
	identifier, ok := item.(string)
	if !ok {
		return nil, &types.InvalidInputError{
			Reason: fmt.Sprintf("delete target must be a string, got %T", item),
		}
	}

	mode := deleteMode(opts)
	req, err := utils.BuildDeleteRequest(
		utils.DeleteEndpoint(c.baseURL, c.cfg.CloudName),
		identifier, mode, c.cfg.APIKey, c.cfg.APISecret,
	)
	if err != nil {
		return nil, err
	}

	if _, err := utils.Fetch(c.http, req); err != nil {
		return nil, err
	}

	return utils.MapDeleteResponse(mode, identifier), nil
}

func deleteMode(opts map[string]any) types.DeleteMode {
	raw, ok := opts["type"]
	if !ok {
		return types.DeleteByPublicID
	}
	mode := types.DeleteMode(fmt.Sprint(raw))
	switch mode {
	case types.DeleteByPublicID, types.DeleteByPrefix:
		return mode
	}
	panic(fmt.Sprintf("cloudpix: unknown delete mode %q", string(mode)))
}
