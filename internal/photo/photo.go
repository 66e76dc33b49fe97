// Package photo loads profile pictures into a form the PDF canvas can embed.
package photo

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/webp"
)

// Photo is an image ready to embed. Type is "JPG", "PNG" or "GIF".
type Photo struct {
	Name   string
	Type   string
	Data   []byte
	Width  int
	Height int
}

// embeddable maps decoder names to the image types the PDF writer embeds as-is.
var embeddable = map[string]string{
	"jpeg": "JPG",
	"png":  "PNG",
	"gif":  "GIF",
}

// Load reads the image at path. JPEG, PNG and GIF are passed through; WebP is
// re-encoded as PNG since PDF writers cannot embed it.
func Load(path string) (Photo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Photo{}, fmt.Errorf("failed to read photo: %w", err)
	}
	return Decode(path, data)
}

// Decode checks that data holds a supported, non-empty image and converts it
// when needed. name identifies the image inside the document.
func Decode(name string, data []byte) (Photo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Photo{}, fmt.Errorf("failed to decode photo %s: %w", name, err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return Photo{}, fmt.Errorf("photo %s has no pixels", name)
	}

	p := Photo{Name: name, Data: data, Width: cfg.Width, Height: cfg.Height}
	if t, ok := embeddable[format]; ok {
		p.Type = t
		return p, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Photo{}, fmt.Errorf("failed to decode %s photo %s: %w", format, name, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Photo{}, fmt.Errorf("failed to convert photo %s: %w", name, err)
	}
	p.Type = "PNG"
	p.Data = buf.Bytes()
	return p, nil
}
