package types

import "fmt"

// SourceKind discriminates between uploading raw file content and
// referencing a remote URL.
type SourceKind int

const (
	SourceFile SourceKind = iota + 1
	SourceURL
)

// Source is an upload target tagged with its kind, so downstream code never
// re-inspects raw strings.
type Source struct {
	Kind  SourceKind
	Value string
}

// DeleteMode selects deletion by exact public id or by id prefix.
type DeleteMode string

const (
	DeleteByPublicID DeleteMode = "public_id"
	DeleteByPrefix   DeleteMode = "prefix"
)

// QueryParam returns the query parameter name the admin API expects for the
// mode. An unknown mode is a configuration mistake, not runtime input.
func (m DeleteMode) QueryParam() string {
	switch m {
	case DeleteByPublicID:
		return "public_ids[]"
	case DeleteByPrefix:
		return "prefix"
	}
	panic(fmt.Sprintf("cloudpix: unknown delete mode %q", string(m)))
}
