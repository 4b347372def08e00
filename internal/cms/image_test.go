package cms

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBuilder records the options it was called with and can be forced
// to fail like a builder that cannot produce a URL.
type stubBuilder struct {
	fail     bool
	lastOpts ImageOptions
	calls    int
}

func (s *stubBuilder) ImageURL(asset Asset, opts ImageOptions) (string, error) {
	s.calls++
	s.lastOpts = opts
	if s.fail {
		return "", errors.New("url construction failed")
	}
	url := "https://cdn.test/" + asset.ID
	if opts.Crop {
		url += fmt.Sprintf("?w=%d&h=%d&fit=crop", opts.Width, opts.Height)
	}
	return url, nil
}

func rasterImage() map[string]interface{} {
	return map[string]interface{}{
		"alt": "Burrata Avocado",
		"asset": map[string]interface{}{
			"_id":      "image-abc123",
			"url":      "https://cdn.test/image-abc123.jpg",
			"mimeType": "image/jpeg",
			"metadata": map[string]interface{}{
				"lqip": "data:image/jpeg;base64,xxxx",
				"dimensions": map[string]interface{}{
					"width":  float64(2000),
					"height": float64(1500),
				},
			},
		},
	}
}

func svgImage() map[string]interface{} {
	return map[string]interface{}{
		"alt": "Logo",
		"asset": map[string]interface{}{
			"_id":      "image-svg1",
			"url":      "https://cdn.test/logo.svg",
			"mimeType": "image/svg+xml",
		},
	}
}

func TestImageAbsentReference(t *testing.T) {
	tr := NewTransformer(&stubBuilder{})

	assert.Nil(t, tr.Image(nil))
	assert.Nil(t, tr.Image(map[string]interface{}{"alt": "no asset"}))
}

func TestImageRaster(t *testing.T) {
	builder := &stubBuilder{}
	tr := NewTransformer(builder)

	got := tr.Image(rasterImage())
	require.NotNil(t, got)
	assert.Equal(t, "https://cdn.test/image-abc123", got.URL)
	assert.Equal(t, "Burrata Avocado", got.Alt)
	assert.Equal(t, 2000, got.Width)
	assert.Equal(t, 1500, got.Height)
	assert.Equal(t, "data:image/jpeg;base64,xxxx", got.BlurDataURL)
}

func TestImageRasterDimensionFallbacks(t *testing.T) {
	tr := NewTransformer(&stubBuilder{})

	raw := map[string]interface{}{
		"asset": map[string]interface{}{"_id": "image-nodims", "mimeType": "image/png"},
	}
	got := tr.Image(raw)
	require.NotNil(t, got)
	assert.Equal(t, 1200, got.Width)
	assert.Equal(t, 630, got.Height)
}

func TestImageBuilderFailureDegradesToNil(t *testing.T) {
	tr := NewTransformer(&stubBuilder{fail: true})
	assert.Nil(t, tr.Image(rasterImage()))
}

func TestImageSVGBypassesBuilder(t *testing.T) {
	builder := &stubBuilder{fail: true} // would fail if consulted
	tr := NewTransformer(builder)

	got := tr.Image(svgImage())
	require.NotNil(t, got)
	assert.Equal(t, "https://cdn.test/logo.svg", got.URL)
	assert.Equal(t, 800, got.Width)
	assert.Equal(t, 600, got.Height)
	assert.Zero(t, builder.calls)
}

func TestImageSVGWithoutURL(t *testing.T) {
	tr := NewTransformer(&stubBuilder{})

	raw := map[string]interface{}{
		"asset": map[string]interface{}{"_id": "image-svg2", "mimeType": "image/svg+xml"},
	}
	assert.Nil(t, tr.Image(raw))
}

func TestImageSizedForcesCrop(t *testing.T) {
	builder := &stubBuilder{}
	tr := NewTransformer(builder)

	got := tr.ImageSized(rasterImage(), 600, 450)
	require.NotNil(t, got)
	assert.Equal(t, ImageOptions{Width: 600, Height: 450, Crop: true}, builder.lastOpts)
}

func TestBrandLogoNeverCrops(t *testing.T) {
	builder := &stubBuilder{}
	tr := NewTransformer(builder)

	got := tr.BrandLogo(rasterImage())
	require.NotNil(t, got)
	assert.Equal(t, ImageOptions{}, builder.lastOpts)
	assert.Equal(t, 2000, got.Width)
	assert.Equal(t, 1500, got.Height)
}

func TestBrandLogoDimensionFallbacks(t *testing.T) {
	tr := NewTransformer(&stubBuilder{})

	raw := map[string]interface{}{
		"asset": map[string]interface{}{"_id": "image-logo", "mimeType": "image/png"},
	}
	got := tr.BrandLogo(raw)
	require.NotNil(t, got)
	assert.Equal(t, 800, got.Width)
	assert.Equal(t, 600, got.Height)
}
