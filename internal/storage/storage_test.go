package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizePhotoScalesDownAndEncodesWebP(t *testing.T) {
	out, err := NormalizePhoto(bytes.NewReader(pngOf(t, 1024, 256)))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 512, cfg.Width)
	require.Equal(t, 128, cfg.Height)
}

func TestNormalizePhotoKeepsSmallImages(t *testing.T) {
	out, err := NormalizePhoto(bytes.NewReader(pngOf(t, 40, 30)))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 40, cfg.Width)
	require.Equal(t, 30, cfg.Height)
}

func TestNormalizePhotoRejectsGarbage(t *testing.T) {
	_, err := NormalizePhoto(strings.NewReader("not an image"))
	require.ErrorIs(t, err, ErrPhotoFormat)
}

func TestLocalStoreRoundTrip(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStore(root, "/media/")
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "trainers/a.webp", PhotoContentType, []byte("x")))

	got, err := os.ReadFile(filepath.Join(root, "trainers", "a.webp"))
	require.NoError(t, err)
	require.Equal(t, []byte("x"), got)

	u, err := s.URL(ctx, "trainers/a.webp")
	require.NoError(t, err)
	require.Equal(t, "/media/trainers/a.webp", u)

	require.NoError(t, s.Delete(ctx, "trainers/a.webp"))
	require.NoError(t, s.Delete(ctx, "trainers/a.webp"))
}

func TestLocalStoreRejectsEscapingKeys(t *testing.T) {
	s := NewLocalStore(t.TempDir(), "/media")
	err := s.Save(context.Background(), "../../etc/passwd", "text/plain", []byte("x"))
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestNewPhotoKey(t *testing.T) {
	k := NewPhotoKey()
	require.True(t, strings.HasPrefix(k, "trainers/"))
	require.True(t, strings.HasSuffix(k, ".webp"))
	require.NotEqual(t, k, NewPhotoKey())
}
