package types

// UploadResult holds the fields the upload endpoint reports for a stored
// image. Response keys without a dedicated field land in Extra, the API
// adds fields over time and unknown ones must not be dropped.
type UploadResult struct {
	PublicID     string
	Version      int64
	Width        int
	Height       int
	Format       string
	ResourceType string
	CreatedAt    string
	Bytes        int64
	URL          string
	SecureURL    string
	Signature    string
	Etag         string

	// Source is the local path or remote URL the upload started from.
	Source string

	Extra map[string]any
}

// DeleteResult identifies what a successful delete call targeted. Exactly
// one of PublicID / Prefix is set, matching the requested delete mode. The
// response body of the delete endpoint is not consulted for identity.
type DeleteResult struct {
	PublicID string
	Prefix   string
}
