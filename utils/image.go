package utils

import (
	"bytes"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// MinImageHeight is the smallest pixel height accepted as a real product
// photo. Anything shorter is treated as an icon or a banner fragment.
const MinImageHeight = 200

// IsValidImage reports whether data is a decodable image tall enough to be
// a product photo. Malformed or truncated data is rejected, never panics.
func IsValidImage(data []byte) bool {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return false
	}
	return img.Bounds().Dy() >= MinImageHeight
}
