package cms

import (
	"github.com/rs/zerolog/log"

	"github.com/masera/storefront/internal/models"
)

type rawSectionHeader struct {
	Type string `mapstructure:"_type"`
	Key  string `mapstructure:"_key"`
	ID   string `mapstructure:"_id"`
}

type rawHero struct {
	Key      string      `mapstructure:"_key"`
	ID       string      `mapstructure:"_id"`
	Title    string      `mapstructure:"title"`
	Subtitle string      `mapstructure:"subtitle"`
	Image    interface{} `mapstructure:"image"`
	CTAText  string      `mapstructure:"ctaText"`
	CTALink  string      `mapstructure:"ctaLink"`
}

type rawFeatureItem struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	Icon        string `mapstructure:"icon"`
}

type rawFeatures struct {
	Key   string           `mapstructure:"_key"`
	ID    string           `mapstructure:"_id"`
	Title string           `mapstructure:"title"`
	Items []rawFeatureItem `mapstructure:"items"`
}

// ResolveSections validates an ordered list of raw content blocks into
// typed sections. Entries with an unknown discriminator or that fail
// decoding are dropped; their siblings render normally.
func (t *Transformer) ResolveSections(raw []map[string]interface{}) []models.Section {
	sections := make([]models.Section, 0, len(raw))
	for i, entry := range raw {
		var header rawSectionHeader
		if err := decode(entry, &header); err != nil {
			log.Debug().Int("index", i).Err(err).Msg("skipping unreadable section")
			continue
		}

		switch header.Type {
		case models.SectionTypeHero:
			if hero, ok := t.resolveHero(entry); ok {
				sections = append(sections, hero)
			}
		case models.SectionTypeFeatures:
			if features, ok := t.resolveFeatures(entry); ok {
				sections = append(sections, features)
			}
		default:
			log.Debug().Int("index", i).Str("type", header.Type).Msg("skipping unknown section type")
		}
	}
	return sections
}

func (t *Transformer) resolveHero(entry map[string]interface{}) (models.HeroSection, bool) {
	var raw rawHero
	if err := decode(entry, &raw); err != nil {
		log.Debug().Err(err).Msg("skipping malformed hero section")
		return models.HeroSection{}, false
	}

	title := raw.Title
	if title == "" {
		title = "New Hero"
	}

	return models.HeroSection{
		Key:      sectionKey(raw.Key, raw.ID),
		Title:    title,
		Subtitle: raw.Subtitle,
		Image:    t.Image(raw.Image),
		CTAText:  raw.CTAText,
		CTALink:  raw.CTALink,
	}, true
}

func (t *Transformer) resolveFeatures(entry map[string]interface{}) (models.FeaturesSection, bool) {
	var raw rawFeatures
	if err := decode(entry, &raw); err != nil {
		log.Debug().Err(err).Msg("skipping malformed features section")
		return models.FeaturesSection{}, false
	}

	items := make([]models.FeatureItem, 0, len(raw.Items))
	for _, it := range raw.Items {
		title := it.Title
		if title == "" {
			title = "Feature"
		}
		items = append(items, models.FeatureItem{
			Title:       title,
			Description: it.Description,
			Icon:        it.Icon,
		})
	}

	return models.FeaturesSection{
		Key:   sectionKey(raw.Key, raw.ID),
		Title: raw.Title,
		Items: items,
	}, true
}

// Homepage resolves the homepage aggregate: validated sections plus meta.
func (t *Transformer) Homepage(raw map[string]interface{}) models.Homepage {
	var doc struct {
		Title       string                   `mapstructure:"title"`
		Description string                   `mapstructure:"description"`
		Sections    []map[string]interface{} `mapstructure:"sections"`
	}
	if err := decode(raw, &doc); err != nil {
		log.Warn().Err(err).Msg("homepage record unreadable, rendering empty")
		return models.Homepage{Sections: []models.Section{}}
	}

	return models.Homepage{
		Sections: t.ResolveSections(doc.Sections),
		Meta: models.HomepageMeta{
			Title:       doc.Title,
			Description: doc.Description,
		},
	}
}

func sectionKey(key, id string) string {
	if key != "" {
		return key
	}
	return id
}
