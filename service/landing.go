package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arrebolmedia/video-editor/model"
	"github.com/arrebolmedia/video-editor/pkg/logger"
)

// SiteWriter materializes landing page sources into the site project. It is
// an interface so handler tests do not touch the real site checkout.
type SiteWriter interface {
	WriteLandingFiles(slug string, files map[string]string) error
}

// DirSiteWriter writes landing sources under <root>/app/<slug>/.
type DirSiteWriter struct {
	Root string
}

func (w *DirSiteWriter) WriteLandingFiles(slug string, files map[string]string) error {
	if w.Root == "" {
		return fmt.Errorf("landing site directory not configured")
	}
	dir := filepath.Join(w.Root, "app", slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create landing dir: %w", err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// LandingService renders and materializes landing pages.
type LandingService struct {
	store  Store
	writer SiteWriter
}

func NewLandingService(store Store, writer SiteWriter) *LandingService {
	return &LandingService{store: store, writer: writer}
}

// Generate renders the landing's page and layout sources and writes them
// into the site project under the landing's slug.
func (s *LandingService) Generate(ctx context.Context, id int) (string, error) {
	landing, err := s.store.GetLanding(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.writer.WriteLandingFiles(landing.Slug, RenderLandingFiles(landing)); err != nil {
		return "", err
	}
	logger.Info(ctx, "landing files generated", "landing_id", id, "slug", landing.Slug)
	return fmt.Sprintf("Archivos generados para /%s", landing.Slug), nil
}

// previewSlug is the reserved slug preview builds are written to. Each
// preview overwrites the previous one.
const previewSlug = "preview"

// Preview writes a transient copy of an unsaved landing and returns the path
// the client should open.
func (s *LandingService) Preview(ctx context.Context, landing *model.Landing) (string, error) {
	if err := s.writer.WriteLandingFiles(previewSlug, RenderLandingFiles(landing)); err != nil {
		return "", err
	}
	return "/" + previewSlug, nil
}

// Seed imports the default landing catalog, skipping slugs that already
// exist. Returns how many were created.
func (s *LandingService) Seed(ctx context.Context) (int, error) {
	created := 0
	for _, tpl := range defaultLandings {
		if _, err := s.store.GetLandingBySlug(ctx, tpl.Slug); err == nil {
			continue
		}
		l := tpl
		if err := s.store.CreateLanding(ctx, &l); err != nil {
			return created, fmt.Errorf("seed landing %s: %w", tpl.Slug, err)
		}
		created++
	}
	logger.Info(ctx, "landing catalog seeded", "created", created)
	return created, nil
}

// RenderLandingFiles substitutes the landing's fields into the page and
// layout source templates.
func RenderLandingFiles(l *model.Landing) map[string]string {
	badge := ""
	if l.ShowBadge {
		badge = l.BadgeText
	}
	r := strings.NewReplacer(
		"__TITLE__", escapeTSX(l.Title),
		"__SUBTITLE__", escapeTSX(l.Subtitle),
		"__HERO_IMAGE__", escapeTSX(l.HeroImage),
		"__LANDING_TYPE__", escapeTSX(l.LandingType),
		"__ADJUSTMENT_TYPE__", escapeTSX(l.AdjustmentType),
		"__ADJUSTMENT_VALUE__", fmt.Sprintf("%g", l.AdjustmentValue),
		"__BADGE_TEXT__", escapeTSX(badge),
		"__SLUG__", escapeTSX(l.Slug),
	)
	return map[string]string{
		"page.tsx":   r.Replace(landingPageTemplate),
		"layout.tsx": r.Replace(landingLayoutTemplate),
	}
}

func escapeTSX(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return s
}

var defaultLandings = []model.Landing{
	{
		Slug:           "colecciones-bodas",
		Title:          "Colecciones de Boda",
		Subtitle:       "Fotografía y video para tu gran día",
		HeroImage:      "/images/hero-bodas.jpg",
		LandingType:    model.LandingTypeClient,
		AdjustmentType: model.AdjustmentNone,
	},
	{
		Slug:            "colecciones-wedding-planners",
		Title:           "Colecciones para Wedding Planners",
		Subtitle:        "Precios preferenciales para aliados",
		HeroImage:       "/images/hero-planners.jpg",
		LandingType:     model.LandingTypePlanner,
		AdjustmentType:  model.AdjustmentPercentage,
		AdjustmentValue: -10,
		ShowBadge:       true,
		BadgeText:       "Precio aliado",
	},
	{
		Slug:            "colecciones-temporada",
		Title:           "Promoción de Temporada",
		Subtitle:        "Fechas seleccionadas con precio especial",
		HeroImage:       "/images/hero-temporada.jpg",
		LandingType:     model.LandingTypeClient,
		AdjustmentType:  model.AdjustmentFixed,
		AdjustmentValue: -5000,
		ShowBadge:       true,
		BadgeText:       "Oferta limitada",
	},
}

const landingPageTemplate = `import Hero from '../../components/Hero';
import Collections from '../../components/Collections';

const config = {
  slug: '__SLUG__',
  title: '__TITLE__',
  subtitle: '__SUBTITLE__',
  heroImage: '__HERO_IMAGE__',
  landingType: '__LANDING_TYPE__',
  adjustmentType: '__ADJUSTMENT_TYPE__',
  adjustmentValue: __ADJUSTMENT_VALUE__,
  badgeText: '__BADGE_TEXT__',
};

export default function Page() {
  return (
    <main>
      <Hero title={config.title} subtitle={config.subtitle} image={config.heroImage} badge={config.badgeText} />
      <Collections
        landingType={config.landingType}
        adjustmentType={config.adjustmentType}
        adjustmentValue={config.adjustmentValue}
      />
    </main>
  );
}
`

const landingLayoutTemplate = `import type { ReactNode } from 'react';

export const metadata = {
  title: '__TITLE__',
  description: '__SUBTITLE__',
};

export default function Layout({ children }: { children: ReactNode }) {
  return <section data-landing="__SLUG__">{children}</section>;
}
`
