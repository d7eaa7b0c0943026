package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Normalize flattens caller options into the canonical parameter set used
// for signing and encoding: sequence values collapse to a single
// comma-joined string under the same key, everything else passes through
// untouched. Rendering scalars to strings is the signer's job.
func Normalize(opts map[string]any) map[string]any {
	params := make(map[string]any, len(opts))
	for k, v := range opts {
		switch seq := v.(type) {
		case []string:
			params[k] = strings.Join(seq, ",")
		case []any:
			parts := make([]string, len(seq))
			for i, e := range seq {
				parts[i] = fmt.Sprint(e)
			}
			params[k] = strings.Join(parts, ",")
		default:
			params[k] = v
		}
	}
	return params
}

// Sign renders params to strings and authenticates them for the remote
// service. The signature is the lowercase hex SHA-1 of the rendered
// "key=value" pairs sorted lexicographically and joined with "&", with the
// API secret appended raw. The file entry never enters the digest, it
// carries the upload target, not a parameter. The returned map keeps every
// original entry (file included) plus timestamp, signature and api_key.
//
// The service recomputes the exact same digest server-side; any drift in
// key set, rendering or sort order makes the request unauthenticated.
func Sign(params map[string]any, secret, apiKey string, now int64) map[string]string {
	ts := strconv.FormatInt(now, 10)

	pairs := make([]string, 0, len(params)+1)
	for k, v := range params {
		if k == "file" {
			continue
		}
		pairs = append(pairs, k+"="+fmt.Sprint(v))
	}
	pairs = append(pairs, "timestamp="+ts)
	sort.Strings(pairs)

	digest := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))

	signed := make(map[string]string, len(params)+3)
	for k, v := range params {
		signed[k] = fmt.Sprint(v)
	}
	signed["timestamp"] = ts
	signed["signature"] = hex.EncodeToString(digest[:])
	signed["api_key"] = apiKey
	return signed
}
