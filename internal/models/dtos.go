package models

import "time"

// DTOs are the CMS-agnostic shapes handed to rendering clients. Every
// field gets a stable default when the source record omits it, so
// downstream code never branches on missing vs empty.

type ImageDTO struct {
	URL         string `json:"url"`
	Alt         string `json:"alt"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	BlurDataURL string `json:"blur_data_url,omitempty"`
}

type SEOMetadata struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords,omitempty"`
	OGImage     *ImageDTO `json:"og_image,omitempty"`
	OGType      string    `json:"og_type,omitempty"`
	TwitterCard string    `json:"twitter_card,omitempty"`
	Canonical   string    `json:"canonical,omitempty"`
	NoIndex     bool      `json:"noindex,omitempty"`
	NoFollow    bool      `json:"nofollow,omitempty"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

type PageDTO struct {
	ID          string      `json:"id"`
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Content     interface{} `json:"content,omitempty"` // portable text passed through untouched
	SEO         SEOMetadata `json:"seo"`
	PublishedAt time.Time   `json:"published_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Locale      string      `json:"locale"`
}

type NavItemDTO struct {
	ID       string       `json:"id"`
	Label    string       `json:"label"`
	Href     string       `json:"href"`
	Target   string       `json:"target,omitempty"`
	Children []NavItemDTO `json:"children,omitempty"`
}

type NavigationDTO struct {
	Items []NavItemDTO `json:"items"`
}

type QuickLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type AnnouncementBar struct {
	Enabled         bool   `json:"enabled"`
	Message         string `json:"message,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
	TextColor       string `json:"text_color,omitempty"`
}

type SiteSettingsDTO struct {
	SiteName          string          `json:"site_name"`
	SiteURL           string          `json:"site_url"`
	FooterDescription string          `json:"footer_description,omitempty"`
	HeaderLogo        *ImageDTO       `json:"header_logo,omitempty"`
	FooterLogo        *ImageDTO       `json:"footer_logo,omitempty"`
	Favicon           *ImageDTO       `json:"favicon,omitempty"`
	Address           string          `json:"address,omitempty"`
	BusinessHours     string          `json:"business_hours,omitempty"`
	GoogleMapsURL     string          `json:"google_maps_url,omitempty"`
	QuickLinks        []QuickLink     `json:"quick_links,omitempty"`
	Social            SocialLinks     `json:"social"`
	Announcement      AnnouncementBar `json:"announcement"`
	SEO               SEOMetadata     `json:"seo"`
	DefaultLocale     string          `json:"default_locale"`
}

type PolicyDTO struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Slug             string      `json:"slug"`
	Icon             string      `json:"icon,omitempty"`
	ShortDescription string      `json:"short_description,omitempty"`
	Content          interface{} `json:"content,omitempty"`
	LastUpdated      string      `json:"last_updated,omitempty"`
	IsPublished      bool        `json:"is_published"`
	Order            int         `json:"order"`
}
