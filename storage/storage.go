// Package storage holds the image store used by restaurant submissions.
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrUnsupportedImage is returned for data that does not sniff as an allowed image type.
var ErrUnsupportedImage = errors.New("unsupported image type")

// detected content type -> stored extension
var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Image is an uploaded blob. Filename and ContentType are what the client
// sent; stores never trust them and sniff Data instead.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ImageStore persists an image and returns the URL it is served from.
type ImageStore interface {
	Store(ctx context.Context, img Image) (string, error)
}

// Detect sniffs data and returns its content type and extension when it is
// a JPEG, PNG, GIF or WebP image.
func Detect(data []byte) (contentType, ext string, err error) {
	ct := http.DetectContentType(data)
	ext, ok := imageTypes[ct]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedImage, ct)
	}
	return ct, ext, nil
}

// objectName builds a collision-free name under prefix.
func objectName(prefix, ext string) string {
	return prefix + "/" + uuid.NewString() + ext
}
