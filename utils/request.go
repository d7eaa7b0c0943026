package utils

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pixelforge/cloudpix/types"
)

// UploadEndpoint returns the image upload URL for a cloud.
func UploadEndpoint(baseURL, cloudName string) string {
	return fmt.Sprintf("%s/%s/image/upload", baseURL, cloudName)
}

// DeleteEndpoint returns the admin resource URL deletes are issued against.
func DeleteEndpoint(baseURL, cloudName string) string {
	return fmt.Sprintf("%s/%s/resources/image/upload", baseURL, cloudName)
}

// BuildUploadRequest encodes the signed parameter set for the given source.
// File uploads become multipart form data with the raw file content as the
// "file" part; remote-URL uploads carry everything (the URL rides in the
// file field) as a urlencoded form.
func BuildUploadRequest(endpoint string, src types.Source, signed map[string]string) (*http.Request, error) {
	switch src.Kind {
	case types.SourceURL:
		form := url.Values{}
		for k, v := range signed {
			form.Set(k, v)
		}
		req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil

	case types.SourceFile:
		data, err := os.ReadFile(src.Value)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", src.Value, err)
		}

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)

		// Stable field order keeps payloads diffable when debugging.
		keys := make([]string, 0, len(signed))
		for k := range signed {
			if k == "file" {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := writer.WriteField(k, signed[k]); err != nil {
				return nil, fmt.Errorf("writing field %q: %w", k, err)
			}
		}

		part, err := writer.CreateFormFile("file", filepath.Base(src.Value))
		if err != nil {
			return nil, fmt.Errorf("creating file part: %w", err)
		}
		if _, err := part.Write(data); err != nil {
			return nil, fmt.Errorf("writing file part: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("closing form writer: %w", err)
		}

		req, err := http.NewRequest(http.MethodPost, endpoint, &buf)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", writer.FormDataContentType())
		return req, nil
	}

	panic(fmt.Sprintf("cloudpix: unknown source kind %d", src.Kind))
}

// BuildDeleteRequest targets the admin API with the mode-specific query
// parameter. Deletes carry no body and are authenticated with basic auth
// rather than a parameter signature.
func BuildDeleteRequest(endpoint, identifier string, mode types.DeleteMode, apiKey, secret string) (*http.Request, error) {
	target := fmt.Sprintf("%s?%s=%s", endpoint, mode.QueryParam(), url.QueryEscape(identifier))
	req, err := http.NewRequest(http.MethodDelete, target, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(apiKey, secret)
	return req, nil
}
