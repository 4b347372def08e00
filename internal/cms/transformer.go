package cms

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/masera/storefront/internal/models"
)

type rawSEO struct {
	Title       string      `mapstructure:"title"`
	MetaTitle   string      `mapstructure:"metaTitle"`
	Description string      `mapstructure:"description"`
	MetaDesc    string      `mapstructure:"metaDescription"`
	Keywords    []string    `mapstructure:"keywords"`
	OGImage     interface{} `mapstructure:"ogImage"`
	OGType      string      `mapstructure:"ogType"`
	TwitterCard string      `mapstructure:"twitterCard"`
	Canonical   string      `mapstructure:"canonical"`
	NoIndex     bool        `mapstructure:"noindex"`
	NoFollow    bool        `mapstructure:"nofollow"`
}

// SEO maps a raw SEO object, accepting both the title/description and
// metaTitle/metaDescription field spellings the store uses.
func (t *Transformer) SEO(raw interface{}) models.SEOMetadata {
	var seo rawSEO
	if err := decode(raw, &seo); err != nil {
		return models.SEOMetadata{OGType: "website", TwitterCard: "summary_large_image"}
	}

	title := seo.Title
	if title == "" {
		title = seo.MetaTitle
	}
	description := seo.Description
	if description == "" {
		description = seo.MetaDesc
	}
	ogType := seo.OGType
	if ogType == "" {
		ogType = "website"
	}
	twitterCard := seo.TwitterCard
	if twitterCard == "" {
		twitterCard = "summary_large_image"
	}

	return models.SEOMetadata{
		Title:       title,
		Description: description,
		Keywords:    seo.Keywords,
		OGImage:     t.Image(seo.OGImage),
		OGType:      ogType,
		TwitterCard: twitterCard,
		Canonical:   seo.Canonical,
		NoIndex:     seo.NoIndex,
		NoFollow:    seo.NoFollow,
	}
}

// MergeMetadata overlays override onto base: every override field wins
// when present and non-empty, otherwise the base value stands. Neither
// input is mutated, and the merge is associative left-to-right.
func MergeMetadata(base, override models.SEOMetadata) models.SEOMetadata {
	out := base

	if override.Title != "" {
		out.Title = override.Title
	}
	if override.Description != "" {
		out.Description = override.Description
	}
	if len(override.Keywords) > 0 {
		out.Keywords = override.Keywords
	}
	if override.OGImage != nil {
		out.OGImage = override.OGImage
	}
	if override.OGType != "" {
		out.OGType = override.OGType
	}
	if override.TwitterCard != "" {
		out.TwitterCard = override.TwitterCard
	}
	if override.Canonical != "" {
		out.Canonical = override.Canonical
	}
	if override.NoIndex {
		out.NoIndex = true
	}
	if override.NoFollow {
		out.NoFollow = true
	}
	return out
}

type rawPage struct {
	ID          string      `mapstructure:"_id"`
	CreatedAt   time.Time   `mapstructure:"_createdAt"`
	UpdatedAt   time.Time   `mapstructure:"_updatedAt"`
	Title       string      `mapstructure:"title"`
	Slug        rawSlug     `mapstructure:"slug"`
	Description string      `mapstructure:"description"`
	Content     interface{} `mapstructure:"content"`
	SEO         interface{} `mapstructure:"seo"`
	PublishedAt time.Time   `mapstructure:"publishedAt"`
	Locale      string      `mapstructure:"locale"`
}

type rawSlug struct {
	Current string `mapstructure:"current"`
}

// Page maps a raw page record to its DTO with stable defaults.
func (t *Transformer) Page(raw map[string]interface{}) models.PageDTO {
	var page rawPage
	if err := decode(raw, &page); err != nil {
		log.Warn().Err(err).Msg("page record unreadable, returning defaults")
		return models.PageDTO{SEO: t.SEO(nil), Locale: "en"}
	}

	publishedAt := page.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = page.CreatedAt
	}
	locale := page.Locale
	if locale == "" {
		locale = "en"
	}

	return models.PageDTO{
		ID:          page.ID,
		Slug:        page.Slug.Current,
		Title:       page.Title,
		Description: page.Description,
		Content:     page.Content,
		SEO:         t.SEO(page.SEO),
		PublishedAt: publishedAt,
		UpdatedAt:   page.UpdatedAt,
		Locale:      locale,
	}
}

type rawNavItem struct {
	Key      string       `mapstructure:"_key"`
	ID       string       `mapstructure:"_id"`
	Label    string       `mapstructure:"label"`
	Href     string       `mapstructure:"href"`
	Target   string       `mapstructure:"target"`
	Children []rawNavItem `mapstructure:"children"`
}

// Navigation transforms a navigation tree recursively, preserving
// nesting. The source is hierarchical by construction, so there is no
// cycle to defend against.
func (t *Transformer) Navigation(raw map[string]interface{}) models.NavigationDTO {
	var nav struct {
		Items []rawNavItem `mapstructure:"items"`
	}
	if err := decode(raw, &nav); err != nil {
		return models.NavigationDTO{Items: []models.NavItemDTO{}}
	}
	return models.NavigationDTO{Items: transformNavItems(nav.Items)}
}

func transformNavItems(items []rawNavItem) []models.NavItemDTO {
	out := make([]models.NavItemDTO, 0, len(items))
	for _, item := range items {
		id := item.Key
		if id == "" {
			id = item.ID
		}
		dto := models.NavItemDTO{
			ID:     id,
			Label:  item.Label,
			Href:   item.Href,
			Target: item.Target,
		}
		if len(item.Children) > 0 {
			dto.Children = transformNavItems(item.Children)
		}
		out = append(out, dto)
	}
	return out
}

type rawSiteSettings struct {
	SiteName          string      `mapstructure:"siteName"`
	SiteURL           string      `mapstructure:"siteUrl"`
	HeaderLogo        interface{} `mapstructure:"headerLogo"`
	FooterLogo        interface{} `mapstructure:"footerLogo"`
	Favicon           interface{} `mapstructure:"favicon"`
	FooterDescription string      `mapstructure:"footerDescription"`
	Address           string      `mapstructure:"address"`
	BusinessHours     string      `mapstructure:"businessHours"`
	GoogleMapsURL     string      `mapstructure:"googleMapsUrl"`
	QuickLinks        []struct {
		Title string `mapstructure:"title"`
		URL   string `mapstructure:"url"`
	} `mapstructure:"quickLinks"`
	SocialLinks struct {
		Facebook  string `mapstructure:"facebook"`
		Twitter   string `mapstructure:"twitter"`
		Instagram string `mapstructure:"instagram"`
		LinkedIn  string `mapstructure:"linkedin"`
		YouTube   string `mapstructure:"youtube"`
	} `mapstructure:"socialLinks"`
	AnnouncementBar struct {
		Enabled         bool   `mapstructure:"enabled"`
		Message         string `mapstructure:"message"`
		BackgroundColor string `mapstructure:"backgroundColor"`
		TextColor       string `mapstructure:"textColor"`
	} `mapstructure:"announcementBar"`
	SEO           interface{} `mapstructure:"seo"`
	DefaultLocale string      `mapstructure:"defaultLocale"`
}

// SiteSettings maps the site settings record. Brand logos skip the
// forced-dimension transform so they are never cropped.
func (t *Transformer) SiteSettings(raw map[string]interface{}) models.SiteSettingsDTO {
	var settings rawSiteSettings
	if err := decode(raw, &settings); err != nil {
		log.Warn().Err(err).Msg("site settings record unreadable, returning defaults")
		return defaultSiteSettings()
	}

	siteName := settings.SiteName
	if siteName == "" {
		siteName = "My Site"
	}
	locale := settings.DefaultLocale
	if locale == "" {
		locale = "en"
	}

	quickLinks := make([]models.QuickLink, 0, len(settings.QuickLinks))
	for _, ql := range settings.QuickLinks {
		quickLinks = append(quickLinks, models.QuickLink{Title: ql.Title, URL: ql.URL})
	}

	return models.SiteSettingsDTO{
		SiteName:          siteName,
		SiteURL:           settings.SiteURL,
		FooterDescription: settings.FooterDescription,
		HeaderLogo:        t.BrandLogo(settings.HeaderLogo),
		FooterLogo:        t.BrandLogo(settings.FooterLogo),
		Favicon:           t.Image(settings.Favicon),
		Address:           settings.Address,
		BusinessHours:     settings.BusinessHours,
		GoogleMapsURL:     settings.GoogleMapsURL,
		QuickLinks:        quickLinks,
		Social: models.SocialLinks{
			Facebook:  settings.SocialLinks.Facebook,
			Twitter:   settings.SocialLinks.Twitter,
			Instagram: settings.SocialLinks.Instagram,
			LinkedIn:  settings.SocialLinks.LinkedIn,
			YouTube:   settings.SocialLinks.YouTube,
		},
		Announcement: models.AnnouncementBar{
			Enabled:         settings.AnnouncementBar.Enabled,
			Message:         settings.AnnouncementBar.Message,
			BackgroundColor: settings.AnnouncementBar.BackgroundColor,
			TextColor:       settings.AnnouncementBar.TextColor,
		},
		SEO:           t.SEO(settings.SEO),
		DefaultLocale: locale,
	}
}

func defaultSiteSettings() models.SiteSettingsDTO {
	return models.SiteSettingsDTO{
		SiteName:      "My Site",
		DefaultLocale: "en",
		SEO:           models.SEOMetadata{OGType: "website", TwitterCard: "summary_large_image"},
	}
}

type rawPolicy struct {
	ID               string      `mapstructure:"_id"`
	Title            string      `mapstructure:"title"`
	Slug             rawSlug     `mapstructure:"slug"`
	Icon             string      `mapstructure:"icon"`
	ShortDescription string      `mapstructure:"shortDescription"`
	Content          interface{} `mapstructure:"content"`
	LastUpdated      string      `mapstructure:"lastUpdated"`
	IsPublished      *bool       `mapstructure:"isPublished"`
	Order            int         `mapstructure:"order"`
}

// Policy maps a policy document; a missing isPublished flag counts as
// published.
func (t *Transformer) Policy(raw map[string]interface{}) models.PolicyDTO {
	var policy rawPolicy
	if err := decode(raw, &policy); err != nil {
		return models.PolicyDTO{IsPublished: true}
	}

	published := policy.IsPublished == nil || *policy.IsPublished

	return models.PolicyDTO{
		ID:               policy.ID,
		Title:            policy.Title,
		Slug:             policy.Slug.Current,
		Icon:             policy.Icon,
		ShortDescription: policy.ShortDescription,
		Content:          policy.Content,
		LastUpdated:      policy.LastUpdated,
		IsPublished:      published,
		Order:            policy.Order,
	}
}

// Policies maps a list of policy documents, preserving order.
func (t *Transformer) Policies(raw []map[string]interface{}) []models.PolicyDTO {
	out := make([]models.PolicyDTO, 0, len(raw))
	for _, entry := range raw {
		out = append(out, t.Policy(entry))
	}
	return out
}
