package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lucsky/cuid"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/masera/storefront/internal/factories"
	"github.com/masera/storefront/internal/models"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate an NDJSON dataset for import into the content store",
	Long:  `seed writes fake branches, categories, menu items and a homepage as newline-delimited JSON documents, ready for bulk import into the content store.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().Int("branches", 2, "number of branches to generate")
	seedCmd.Flags().Int("categories", 8, "number of categories to generate")
	seedCmd.Flags().Int("items", 60, "number of menu items to generate")
	seedCmd.Flags().String("output-file", "seed.ndjson", "output file path")

	viper.BindPFlag("seed.branches", seedCmd.Flags().Lookup("branches"))
	viper.BindPFlag("seed.categories", seedCmd.Flags().Lookup("categories"))
	viper.BindPFlag("seed.items", seedCmd.Flags().Lookup("items"))
	viper.BindPFlag("seed.output_file", seedCmd.Flags().Lookup("output-file"))

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	factory := &factories.ContentFactory{}
	branches := factory.CreateBranches(cfg.Seed.Branches)
	categories := factory.CreateCategories(cfg.Seed.Categories)
	items := factory.CreateItems(cfg.Seed.Items, categories, branches)
	homepage := factory.CreateHomepage()

	out, err := os.Create(cfg.Seed.OutputFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	total := len(branches) + len(categories) + len(items) + 1
	bar := progressbar.Default(int64(total), "seeding")
	enc := json.NewEncoder(out)

	write := func(doc map[string]interface{}) error {
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("writing document: %w", err)
		}
		return bar.Add(1)
	}

	for _, b := range branches {
		if err := write(branchDoc(b)); err != nil {
			return err
		}
	}
	for _, c := range categories {
		if err := write(categoryDoc(c)); err != nil {
			return err
		}
	}
	for _, it := range items {
		if err := write(itemDoc(it)); err != nil {
			return err
		}
	}
	if err := write(homepageDoc(homepage)); err != nil {
		return err
	}

	log.Info().
		Int("branches", len(branches)).
		Int("categories", len(categories)).
		Int("items", len(items)).
		Str("file", cfg.Seed.OutputFile).
		Msg("seed dataset written")
	return nil
}

func slugDoc(s string) map[string]interface{} {
	return map[string]interface{}{"_type": "slug", "current": s}
}

func refDoc(id string) map[string]interface{} {
	return map[string]interface{}{"_type": "reference", "_ref": id}
}

func branchDoc(b models.Branch) map[string]interface{} {
	return map[string]interface{}{
		"_id":            b.ID,
		"_type":          "branch",
		"name":           b.Name,
		"slug":           slugDoc(b.Slug),
		"address":        b.Address,
		"phone":          b.Phone,
		"whatsapp":       b.WhatsApp,
		"operatingHours": b.OperatingHours,
		"googleMapsUrl":  b.GoogleMapsURL,
		"isActive":       b.IsActive,
	}
}

func categoryDoc(c models.MenuCategory) map[string]interface{} {
	return map[string]interface{}{
		"_id":          c.ID,
		"_type":        "menuCategory",
		"name":         c.Name,
		"slug":         slugDoc(c.Slug),
		"type":         c.Kind,
		"description":  c.Description,
		"displayOrder": c.DisplayOrder,
		"isActive":     c.IsActive,
	}
}

func itemDoc(it models.MenuItem) map[string]interface{} {
	pricing := make([]map[string]interface{}, 0, len(it.BranchPricing))
	for _, bp := range it.BranchPricing {
		entry := map[string]interface{}{
			"_key":          cuid.Slug(),
			"branch":        refDoc(bp.BranchID),
			"price":         bp.Price,
			"isHighlighted": bp.IsHighlighted,
		}
		if bp.IsAvailable != nil {
			entry["isAvailable"] = *bp.IsAvailable
		}
		pricing = append(pricing, entry)
	}

	doc := map[string]interface{}{
		"_id":           it.ID,
		"_type":         "menuItem",
		"name":          it.Name,
		"description":   it.Description,
		"category":      refDoc(it.Category.ID),
		"branchPricing": pricing,
		"displayOrder":  it.DisplayOrder,
		"isActive":      it.IsActive,
		"isNew":         it.IsNew,
		"isPopular":     it.IsPopular,
	}
	if len(it.DietaryTags) > 0 {
		doc["dietaryTags"] = it.DietaryTags
	}
	if it.PopularityScope != "" {
		doc["popularAt"] = it.PopularityScope
	}
	return doc
}

func homepageDoc(h models.Homepage) map[string]interface{} {
	sections := make([]map[string]interface{}, 0, len(h.Sections))
	for _, section := range h.Sections {
		switch s := section.(type) {
		case models.HeroSection:
			sections = append(sections, map[string]interface{}{
				"_type":    models.SectionTypeHero,
				"_key":     s.Key,
				"title":    s.Title,
				"subtitle": s.Subtitle,
				"ctaText":  s.CTAText,
				"ctaLink":  s.CTALink,
			})
		case models.FeaturesSection:
			items := make([]map[string]interface{}, 0, len(s.Items))
			for _, f := range s.Items {
				items = append(items, map[string]interface{}{
					"_key":        cuid.Slug(),
					"title":       f.Title,
					"description": f.Description,
					"icon":        f.Icon,
				})
			}
			sections = append(sections, map[string]interface{}{
				"_type": models.SectionTypeFeatures,
				"_key":  s.Key,
				"title": s.Title,
				"items": items,
			})
		}
	}

	return map[string]interface{}{
		"_id":         "homepage",
		"_type":       "homepage",
		"title":       h.Meta.Title,
		"description": h.Meta.Description,
		"sections":    sections,
	}
}
