package utils

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/pixelforge/cloudpix/types"
)

// MapUploadResponse turns the raw upload response body into a typed result.
// A body carrying error.message is a service-level rejection even when the
// status was 2xx. Top-level keys without a dedicated field are kept in
// Extra rather than dropped.
func MapUploadResponse(body []byte, source string) (*types.UploadResult, error) {
	if msg := gjson.GetBytes(body, "error.message"); msg.Exists() {
		return nil, &types.RemoteError{Message: msg.String()}
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decoding upload response: %w", err)
	}

	result := &types.UploadResult{Source: source, Extra: map[string]any{}}
	for k, v := range decoded {
		switch k {
		case "public_id":
			result.PublicID = asString(v)
		case "version":
			result.Version = asInt64(v)
		case "width":
			result.Width = int(asInt64(v))
		case "height":
			result.Height = int(asInt64(v))
		case "format":
			result.Format = asString(v)
		case "resource_type":
			result.ResourceType = asString(v)
		case "created_at":
			result.CreatedAt = asString(v)
		case "bytes":
			result.Bytes = asInt64(v)
		case "url":
			result.URL = asString(v)
		case "secure_url":
			result.SecureURL = asString(v)
		case "signature":
			result.Signature = asString(v)
		case "etag":
			result.Etag = asString(v)
		default:
			result.Extra[k] = v
		}
	}
	return result, nil
}

// MapDeleteResponse builds the delete result from the requested mode and
// identifier. The success body is not parsed for identity.
func MapDeleteResponse(mode types.DeleteMode, identifier string) *types.DeleteResult {
	switch mode {
	case types.DeleteByPublicID:
		return &types.DeleteResult{PublicID: identifier}
	case types.DeleteByPrefix:
		return &types.DeleteResult{Prefix: identifier}
	}
	panic(fmt.Sprintf("cloudpix: unknown delete mode %q", string(mode)))
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asInt64 reads a JSON number; encoding/json decodes them as float64.
func asInt64(v any) int64 {
	f, _ := v.(float64)
	return int64(f)
}
