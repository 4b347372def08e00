package cms

import (
	"github.com/masera/storefront/internal/models"
)

// Dimension fallbacks when asset metadata carries none.
const (
	svgFallbackWidth  = 800
	svgFallbackHeight = 600

	rasterFallbackWidth  = 1200
	rasterFallbackHeight = 630
)

const svgMimeType = "image/svg+xml"

type rawImage struct {
	Alt   string    `mapstructure:"alt"`
	Asset *rawAsset `mapstructure:"asset"`
}

type rawAsset struct {
	ID       string `mapstructure:"_id"`
	Ref      string `mapstructure:"_ref"`
	URL      string `mapstructure:"url"`
	MimeType string `mapstructure:"mimeType"`
	Metadata struct {
		LQIP       string `mapstructure:"lqip"`
		Dimensions struct {
			Width  int `mapstructure:"width"`
			Height int `mapstructure:"height"`
		} `mapstructure:"dimensions"`
	} `mapstructure:"metadata"`
}

func (a *rawAsset) asset() Asset {
	return Asset{
		ID:       a.ID,
		Ref:      a.Ref,
		URL:      a.URL,
		MimeType: a.MimeType,
		Width:    a.Metadata.Dimensions.Width,
		Height:   a.Metadata.Dimensions.Height,
		LQIP:     a.Metadata.LQIP,
	}
}

// Image resolves a content-store image reference to a concrete URL with
// dimensions. It returns nil whenever the reference is absent or cannot
// be resolved; callers treat nil as "omit the image".
func (t *Transformer) Image(raw interface{}) *models.ImageDTO {
	return t.image(raw, ImageOptions{})
}

// ImageSized resolves like Image but forces a width x height crop through
// the raster pipeline. SVGs still bypass the transform entirely.
func (t *Transformer) ImageSized(raw interface{}, width, height int) *models.ImageDTO {
	return t.image(raw, ImageOptions{Width: width, Height: height, Crop: true})
}

func (t *Transformer) image(raw interface{}, opts ImageOptions) *models.ImageDTO {
	img, ok := decodeImage(raw)
	if !ok {
		return nil
	}
	asset := img.Asset.asset()

	// Vector assets must not be run through the raster pipeline; the
	// direct URL is served verbatim.
	if asset.MimeType == svgMimeType {
		if asset.URL == "" {
			return nil
		}
		return &models.ImageDTO{
			URL:    asset.URL,
			Alt:    img.Alt,
			Width:  defaultDim(asset.Width, svgFallbackWidth),
			Height: defaultDim(asset.Height, svgFallbackHeight),
		}
	}

	url, err := t.urls.ImageURL(asset, opts)
	if err != nil || url == "" {
		return nil
	}

	return &models.ImageDTO{
		URL:         url,
		Alt:         img.Alt,
		Width:       defaultDim(asset.Width, rasterFallbackWidth),
		Height:      defaultDim(asset.Height, rasterFallbackHeight),
		BlurDataURL: asset.LQIP,
	}
}

// BrandLogo resolves a logo image without any forced-dimension transform,
// preserving the original aspect ratio. Logos must never be cropped.
func (t *Transformer) BrandLogo(raw interface{}) *models.ImageDTO {
	img, ok := decodeImage(raw)
	if !ok {
		return nil
	}
	asset := img.Asset.asset()

	if asset.MimeType == svgMimeType {
		if asset.URL == "" {
			return nil
		}
		return &models.ImageDTO{
			URL:    asset.URL,
			Alt:    img.Alt,
			Width:  defaultDim(asset.Width, svgFallbackWidth),
			Height: defaultDim(asset.Height, svgFallbackHeight),
		}
	}

	url, err := t.urls.ImageURL(asset, ImageOptions{})
	if err != nil || url == "" {
		return nil
	}

	return &models.ImageDTO{
		URL:         url,
		Alt:         img.Alt,
		Width:       defaultDim(asset.Width, svgFallbackWidth),
		Height:      defaultDim(asset.Height, svgFallbackHeight),
		BlurDataURL: asset.LQIP,
	}
}

func decodeImage(raw interface{}) (rawImage, bool) {
	if raw == nil {
		return rawImage{}, false
	}
	var img rawImage
	if err := decode(raw, &img); err != nil {
		return rawImage{}, false
	}
	if img.Asset == nil {
		return rawImage{}, false
	}
	return img, true
}

func defaultDim(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
