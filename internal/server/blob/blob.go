// Package blob abstracts the object storage used for submission media.
// Uploads are indirect: the server hands out short-lived presigned PUT
// URLs and clients push bytes straight to storage.
package blob

import "context"

// UploadTarget is a single presigned upload slot: the storage key the
// object will live under and the URL to PUT the bytes to.
type UploadTarget struct {
	Key string
	URL string
}

// Store is the object storage contract used by the submission pipeline.
type Store interface {
	// IssueUploadTarget reserves a fresh storage key and returns a
	// presigned PUT URL for it.
	IssueUploadTarget(ctx context.Context) (*UploadTarget, error)

	// ResolveURL verifies the object exists and returns a presigned GET
	// URL for it. Returns common.ErrMissingObject when the key does not
	// resolve to a live object.
	ResolveURL(ctx context.Context, key string) (string, error)

	// Delete removes one object. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
