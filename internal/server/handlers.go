package server

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/masera/storefront/internal/cms"
	"github.com/masera/storefront/internal/menu"
	"github.com/masera/storefront/internal/models"
)

type menuResponse struct {
	Homepage models.Homepage        `json:"homepage"`
	Menu     menu.Menu              `json:"menu"`
	Sections []models.CategoryGroup `json:"sections"`
}

type branchMenuResponse struct {
	Branch   models.Branch          `json:"branch"`
	Branches []models.Branch        `json:"branches"`
	Menu     menu.Menu              `json:"menu"`
	Sections []models.CategoryGroup `json:"sections"`
	Meta     models.SEOMetadata     `json:"meta"`
}

type homepageResponse struct {
	Homepage models.Homepage    `json:"homepage"`
	Meta     models.SEOMetadata `json:"meta"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleMenu serves the branch-independent (social) menu together with
// the homepage sections that frame it. Items carry no prices here;
// pricing only exists within a branch context.
func (s *Server) handleMenu(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var (
		homepage   models.Homepage
		categories []models.MenuCategory
		items      []models.MenuItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		homepage, err = s.store.Homepage(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.store.Categories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.store.Items(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "content store unavailable")
	}

	m := menu.Compose(items, categories, "")
	s.analytics.PageView(ctx, "menu", nil)
	return c.JSON(menuResponse{Homepage: homepage, Menu: m, Sections: m.Ordered()})
}

func (s *Server) handleBranches(c *fiber.Ctx) error {
	branches, err := s.store.Branches(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "content store unavailable")
	}
	if branches == nil {
		branches = []models.Branch{}
	}
	return c.JSON(fiber.Map{"branches": branches})
}

// handleBranchMenu serves the priced menu for one branch, together with
// the branch list for the location switcher and merged page metadata.
func (s *Server) handleBranchMenu(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := c.Params("slug")

	var (
		branch     *models.Branch
		branches   []models.Branch
		categories []models.MenuCategory
		items      []models.MenuItem
		settings   models.SiteSettingsDTO
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		branch, err = s.store.BranchBySlug(gctx, slug)
		return err
	})
	g.Go(func() error {
		var err error
		branches, err = s.store.Branches(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.store.Categories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.store.Items(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = s.store.SiteSettings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "content store unavailable")
	}
	if branch == nil {
		return fiber.NewError(fiber.StatusNotFound, "branch not found")
	}

	m := menu.Compose(items, categories, branch.Slug)
	meta := cms.MergeMetadata(settings.SEO, models.SEOMetadata{
		Title:       branch.Name + " | " + settings.SiteName,
		Description: branch.Address,
	})

	s.analytics.PageView(ctx, "branch-menu", map[string]string{"branch": branch.Slug})
	return c.JSON(branchMenuResponse{
		Branch:   *branch,
		Branches: branches,
		Menu:     m,
		Sections: m.Ordered(),
		Meta:     meta,
	})
}

func (s *Server) handleHomepage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var (
		homepage models.Homepage
		settings models.SiteSettingsDTO
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		homepage, err = s.store.Homepage(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = s.store.SiteSettings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "content store unavailable")
	}

	meta := cms.MergeMetadata(settings.SEO, models.SEOMetadata{
		Title:       homepage.Meta.Title,
		Description: homepage.Meta.Description,
	})

	s.analytics.PageView(ctx, "homepage", nil)
	return c.JSON(homepageResponse{Homepage: homepage, Meta: meta})
}

func (s *Server) handleSettings(c *fiber.Ctx) error {
	settings, err := s.store.SiteSettings(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "content store unavailable")
	}
	return c.JSON(settings)
}

func (s *Server) handleNavigation(c *fiber.Ctx) error {
	nav, err := s.store.Navigation(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "content store unavailable")
	}
	if nav.Items == nil {
		nav.Items = []models.NavItemDTO{}
	}
	return c.JSON(nav)
}

func (s *Server) handlePage(c *fiber.Ctx) error {
	ctx := c.UserContext()
	page, err := s.store.PageBySlug(ctx, c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "content store unavailable")
	}
	if page == nil {
		return fiber.NewError(fiber.StatusNotFound, "page not found")
	}
	s.analytics.PageView(ctx, "page", map[string]string{"page": page.Slug})
	return c.JSON(page)
}

func (s *Server) handlePolicies(c *fiber.Ctx) error {
	policies, err := s.store.Policies(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "content store unavailable")
	}
	if policies == nil {
		policies = []models.PolicyDTO{}
	}
	return c.JSON(fiber.Map{"policies": policies})
}

func (s *Server) handlePolicy(c *fiber.Ctx) error {
	ctx := c.UserContext()
	policy, err := s.store.PolicyBySlug(ctx, c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "content store unavailable")
	}
	if policy == nil {
		return fiber.NewError(fiber.StatusNotFound, "policy not found")
	}
	s.analytics.PageView(ctx, "policy", map[string]string{"policy": policy.Slug})
	return c.JSON(policy)
}
