package models

import "encoding/json"

const (
	SectionTypeHero     = "hero"
	SectionTypeFeatures = "features"
)

// Section is one homepage content block. The set of implementations is
// closed: adding a kind means adding a validator branch and a renderer
// branch together.
type Section interface {
	SectionType() string
}

type HeroSection struct {
	Key      string    `json:"_key,omitempty"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle,omitempty"`
	Image    *ImageDTO `json:"image,omitempty"`
	CTAText  string    `json:"cta_text,omitempty"`
	CTALink  string    `json:"cta_link,omitempty"`
}

func (HeroSection) SectionType() string { return SectionTypeHero }

func (s HeroSection) MarshalJSON() ([]byte, error) {
	type alias HeroSection
	return json.Marshal(struct {
		Type string `json:"_type"`
		alias
	}{Type: s.SectionType(), alias: alias(s)})
}

type FeatureItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

type FeaturesSection struct {
	Key   string        `json:"_key,omitempty"`
	Title string        `json:"title,omitempty"`
	Items []FeatureItem `json:"items"`
}

func (FeaturesSection) SectionType() string { return SectionTypeFeatures }

func (s FeaturesSection) MarshalJSON() ([]byte, error) {
	type alias FeaturesSection
	return json.Marshal(struct {
		Type string `json:"_type"`
		alias
	}{Type: s.SectionType(), alias: alias(s)})
}

type HomepageMeta struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Homepage is the ordered aggregate of validated sections.
type Homepage struct {
	Sections []Section    `json:"sections"`
	Meta     HomepageMeta `json:"meta"`
}
