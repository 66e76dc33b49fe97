package photo

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			img.Set(x, y, color.RGBA{R: uint8(60 * x), G: uint8(80 * y), B: 120, A: 255})
		}
	}
	return img
}

func TestDecode(t *testing.T) {
	var pngData, jpgData bytes.Buffer
	require.NoError(t, png.Encode(&pngData, testImage()))
	require.NoError(t, jpeg.Encode(&jpgData, testImage(), nil))

	tests := []struct {
		name     string
		data     []byte
		expected string
		wantErr  bool
	}{
		{"png", pngData.Bytes(), "PNG", false},
		{"jpeg", jpgData.Bytes(), "JPG", false},
		{"garbage", []byte("definitely not an image"), "", true},
		{"empty", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode("fotos/perfil", tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.Type)
			assert.Equal(t, 4, p.Width)
			assert.Equal(t, 3, p.Height)
			assert.Equal(t, tt.data, p.Data, "embeddable formats are passed through")
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, testImage()))
		path := filepath.Join(t.TempDir(), "perfil.png")
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

		p, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, path, p.Name)
		assert.Equal(t, "PNG", p.Type)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.jpg"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read photo")
	})
}
