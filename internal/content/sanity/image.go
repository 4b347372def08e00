package sanity

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/masera/storefront/internal/cms"
)

// ImageBuilder builds Sanity CDN URLs for raster assets. Asset ids and
// references share the form "image-<hash>-<width>x<height>-<ext>".
type ImageBuilder struct {
	projectID string
	dataset   string
}

func NewImageBuilder(projectID, dataset string) *ImageBuilder {
	return &ImageBuilder{projectID: projectID, dataset: dataset}
}

func (b *ImageBuilder) ImageURL(asset cms.Asset, opts cms.ImageOptions) (string, error) {
	base := asset.URL
	if base == "" {
		ref := asset.Ref
		if ref == "" {
			ref = asset.ID
		}
		filename, err := parseAssetRef(ref)
		if err != nil {
			return "", err
		}
		base = fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s", b.projectID, b.dataset, filename)
	}

	params := url.Values{}
	if opts.Width > 0 {
		params.Set("w", fmt.Sprint(opts.Width))
	}
	if opts.Height > 0 {
		params.Set("h", fmt.Sprint(opts.Height))
	}
	if opts.Crop {
		params.Set("fit", "crop")
	}
	if len(params) == 0 {
		return base, nil
	}

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + params.Encode(), nil
}

func parseAssetRef(ref string) (string, error) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return "", fmt.Errorf("unrecognized asset reference %q", ref)
	}
	hash, dims, ext := parts[1], parts[2], parts[3]
	if !strings.Contains(dims, "x") {
		return "", fmt.Errorf("asset reference %q has no dimensions", ref)
	}
	return fmt.Sprintf("%s-%s.%s", hash, dims, ext), nil
}
