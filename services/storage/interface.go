package storage

import "context"

// MirroredImage identifies a copy of a hotel image on the CDN.
type MirroredImage struct {
	ID  string
	URL string
}

// ImageMirror copies uploaded hotel images to a CDN. The store keeps the
// original bytes either way.
type ImageMirror interface {
	Put(ctx context.Context, name string, data []byte) (MirroredImage, error)
	Remove(ctx context.Context, id string) error
}
