package types

// LocalFile holds scan metadata for a file queued for upload.
type LocalFile struct {
	Path        string
	ContentType string
	SizeInBytes int64
	Hash        string
}
