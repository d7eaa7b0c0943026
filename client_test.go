package cloudpix

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelforge/cloudpix/types"
)

func testConfig() Config {
	return Config{CloudName: "demo", APIKey: "key", APISecret: "secret"}
}

// newTestClient points a client at a local server standing in for the API.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClientWithHTTP(testConfig(), server.Client())
	client.SetBaseURL(server.URL)
	return client
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		name     string
		item     any
		wantKind types.SourceKind
		wantErr  bool
	}{
		{"https url", "https://example.com/a.png", types.SourceURL, false},
		{"http url", "http://example.com/a.png", types.SourceURL, false},
		{"local path", "/local/a.png", types.SourceFile, false},
		{"relative path", "img.png", types.SourceFile, false},
		{"non-string", 123, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := ParseSource(tt.item)
			if tt.wantErr {
				require.Error(t, err)
				var invalid *types.InvalidInputError
				assert.True(t, errors.As(err, &invalid))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, src.Kind)
		})
	}
}

func TestUploadRoutesURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/demo/image/upload", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "https://example.com/a.png", r.PostForm.Get("file"))
		assert.Equal(t, "a,b", r.PostForm.Get("tags"))
		assert.Equal(t, "key", r.PostForm.Get("api_key"))
		assert.NotEmpty(t, r.PostForm.Get("signature"))
		assert.NotEmpty(t, r.PostForm.Get("timestamp"))

		w.Write([]byte(`{"public_id": "x", "width": 100}`))
	})

	result, err := client.Upload("https://example.com/a.png", map[string]any{"tags": []string{"a", "b"}})
	require.NoError(t, err)

	assert.Equal(t, "x", result.PublicID)
	assert.Equal(t, 100, result.Width)
	assert.Equal(t, "https://example.com/a.png", result.Source)
}

func TestUploadRoutesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")
	content := []byte("file-bytes")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/image/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "key", r.FormValue("api_key"))
		assert.NotEmpty(t, r.FormValue("signature"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "img.png", header.Filename)

		w.Write([]byte(`{"public_id": "x", "width": 100}`))
	})

	result, err := client.Upload(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "x", result.PublicID)
	assert.Equal(t, path, result.Source)
}

func TestUploadInvalidInput(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for invalid input")
	})

	_, err := client.Upload(123, nil)
	require.Error(t, err)

	var invalid *types.InvalidInputError
	assert.True(t, errors.As(err, &invalid))
}

func TestUploadRemoteError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"message": "Invalid Signature"}}`))
	})

	_, err := client.Upload("https://example.com/a.png", nil)
	require.Error(t, err)

	var remoteErr *types.RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, "Invalid Signature", remoteErr.Message)
}

func TestUploadAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "storage backend unavailable", http.StatusBadGateway)
	})

	_, err := client.Upload("https://example.com/a.png", nil)
	require.Error(t, err)

	var apiErr *types.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestDeleteModes(t *testing.T) {
	tests := []struct {
		name      string
		opts      map[string]any
		wantQuery string
		wantRes   *types.DeleteResult
	}{
		{
			name:      "public id mode",
			opts:      map[string]any{"type": "public_id"},
			wantQuery: "public_ids[]=abc123",
			wantRes:   &types.DeleteResult{PublicID: "abc123"},
		},
		{
			name:      "prefix mode",
			opts:      map[string]any{"type": "prefix"},
			wantQuery: "prefix=abc123",
			wantRes:   &types.DeleteResult{Prefix: "abc123"},
		},
		{
			name:      "missing type defaults to public id",
			opts:      nil,
			wantQuery: "public_ids[]=abc123",
			wantRes:   &types.DeleteResult{PublicID: "abc123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/demo/resources/image/upload", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)

				user, pass, ok := r.BasicAuth()
				require.True(t, ok)
				assert.Equal(t, "key", user)
				assert.Equal(t, "secret", pass)

				w.Write([]byte(`{"deleted": {"abc123": "deleted"}}`))
			})

			result, err := client.Delete("abc123", tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRes, result)
		})
	}
}

func TestDeleteUnknownModePanics(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for an unknown mode")
	})

	require.Panics(t, func() {
		client.Delete("abc123", map[string]any{"type": "unknown"})
	})
}

func TestDeleteInvalidInput(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for invalid input")
	})

	_, err := client.Delete(42, nil)
	require.Error(t, err)

	var invalid *types.InvalidInputError
	assert.True(t, errors.As(err, &invalid))
}

func TestDeleteTransportErrorPropagates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := client.Delete("abc123", nil)
	require.Error(t, err)

	var apiErr *types.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
