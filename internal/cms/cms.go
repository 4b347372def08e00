// Package cms normalizes loosely-typed content-store records into the
// stable DTOs the rendering layer consumes. Authored content is expected
// to be imperfect, so every transform degrades (nil image, dropped
// section, defaulted field) instead of failing the page.
package cms

import (
	"time"

	"github.com/mitchellh/mapstructure"
)

// Asset is the decoded underlying image asset of a content-store image
// reference, as handed to a URLBuilder.
type Asset struct {
	ID       string
	Ref      string
	URL      string
	MimeType string
	Width    int
	Height   int
	LQIP     string
}

// ImageOptions controls the raster transformation pipeline. Zero width
// and height means no forced dimensions.
type ImageOptions struct {
	Width  int
	Height int
	Crop   bool
}

// URLBuilder turns an asset into a concrete, CDN-servable URL. The Sanity
// implementation lives in content/sanity; tests supply stubs.
type URLBuilder interface {
	ImageURL(asset Asset, opts ImageOptions) (string, error)
}

// Transformer maps raw content-store records to DTOs. It carries no
// mutable state and is safe for concurrent use.
type Transformer struct {
	urls URLBuilder
}

func NewTransformer(urls URLBuilder) *Transformer {
	return &Transformer{urls: urls}
}

// decode unmarshals a raw record into a typed shape, tolerating the sort
// of loose typing (numbers as floats, missing keys) CMS payloads carry.
func decode(raw interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
