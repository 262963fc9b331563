package dedupe

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/corona10/goimagehash"
)

// PhotoHash computes a perceptual (average) hash of the image at path. Two
// photos are considered the same picture when their hashes match exactly.
func PhotoHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open photo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	hash, err := goimagehash.AverageHash(img)
	if err != nil {
		return "", fmt.Errorf("hash photo: %w", err)
	}

	return hash.ToString(), nil
}
