package service

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"fotogram/internal/model"
)

// testPNG encodes a solid-color PNG of the given size.
func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeImageDataURI(t *testing.T) {
	raw := testPNG(t, 4, 4)
	encoded := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "data uri", input: "data:image/png;base64," + encoded},
		{name: "bare base64", input: encoded},
		{name: "missing comma", input: "data:image/png;base64" + encoded, wantErr: true},
		{name: "non-image media type", input: "data:text/plain;base64," + encoded, wantErr: true},
		{name: "invalid base64", input: "data:image/png;base64,!!!not-base64!!!", wantErr: true},
		{name: "empty payload", input: "data:image/png;base64,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeImageDataURI(tt.input)
			if tt.wantErr {
				if !errors.Is(err, model.ErrInvalidImage) {
					t.Fatalf("decodeImageDataURI() error = %v, want ErrInvalidImage", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeImageDataURI() unexpected error: %v", err)
			}
			if !bytes.Equal(got, raw) {
				t.Error("decodeImageDataURI() returned different bytes than encoded")
			}
		})
	}
}

func TestDecodeImageDataURISizeBound(t *testing.T) {
	oversized := make([]byte, model.MaxPostImageSize+1)
	_, err := decodeImageDataURI(base64.StdEncoding.EncodeToString(oversized))
	if !errors.Is(err, model.ErrInvalidImage) {
		t.Fatalf("decodeImageDataURI() error = %v, want ErrInvalidImage for oversized payload", err)
	}
}

func TestNormalizeToJPEG(t *testing.T) {
	t.Run("small image kept at size", func(t *testing.T) {
		out, err := normalizeToJPEG(testPNG(t, 32, 24))
		if err != nil {
			t.Fatalf("normalizeToJPEG() unexpected error: %v", err)
		}
		cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("failed to decode normalized output: %v", err)
		}
		if format != "jpeg" {
			t.Errorf("normalizeToJPEG() format = %q, want jpeg", format)
		}
		if cfg.Width != 32 || cfg.Height != 24 {
			t.Errorf("normalizeToJPEG() size = %dx%d, want 32x24", cfg.Width, cfg.Height)
		}
	})

	t.Run("large image bounded", func(t *testing.T) {
		out, err := normalizeToJPEG(testPNG(t, 2160, 1080))
		if err != nil {
			t.Fatalf("normalizeToJPEG() unexpected error: %v", err)
		}
		cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("failed to decode normalized output: %v", err)
		}
		if cfg.Width > postImageMaxEdge || cfg.Height > postImageMaxEdge {
			t.Errorf("normalizeToJPEG() size = %dx%d, want both edges <= %d", cfg.Width, cfg.Height, postImageMaxEdge)
		}
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := normalizeToJPEG([]byte("definitely not an image"))
		if !errors.Is(err, model.ErrInvalidImage) {
			t.Fatalf("normalizeToJPEG() error = %v, want ErrInvalidImage", err)
		}
	})
}
