// Package assets resolves the binary assets that picture ingredients
// reference by key: an in-memory store for tests and local preview,
// and an S3-backed store producing presigned URLs.
package assets
