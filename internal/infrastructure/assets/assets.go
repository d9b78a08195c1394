// Package assets loads and prepares image assets.
//
// Images are decoded and scaled on the CPU so that the result can be
// tested without a graphics context; the render package uploads them.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"golang.org/x/image/draw"
)

// LoadImage reads and decodes an image from fsys
func LoadImage(fsys fs.FS, path string) (image.Image, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// Scale resizes src to w×h with bilinear filtering
func Scale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// LoadIcon loads an image and scales it to a size×size square
func LoadIcon(fsys fs.FS, path string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("assets: icon size %d must be positive", size)
	}
	img, err := LoadImage(fsys, path)
	if err != nil {
		return nil, err
	}
	return Scale(img, size, size), nil
}
