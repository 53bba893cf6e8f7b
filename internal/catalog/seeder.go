package catalog

import (
	"io/fs"
	"os"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/jsrefhub/backend/internal/logging"
)

// pagePattern matches content files the seeder will load.
const pagePattern = "*.{yaml,yml}"

// Seeder loads reference pages from the content directory and
// registers the built-in default set.
type Seeder struct {
	manager    *Manager
	contentDir string
	log        *logging.Logger
}

// NewSeeder creates a page seeder.
func NewSeeder(manager *Manager, contentDir string, log *logging.Logger) *Seeder {
	return &Seeder{
		manager:    manager,
		contentDir: contentDir,
		log:        log,
	}
}

// SeedPages loads all YAML page files under the content directory.
// A missing directory is not an error; the defaults still apply.
func (s *Seeder) SeedPages() error {
	if _, err := os.Stat(s.contentDir); os.IsNotExist(err) {
		s.log.Info("content directory not found, using defaults only",
			zap.String("dir", s.contentDir))
		return nil
	}

	var loaded, failed atomic.Int64

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, s.contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		if ok, _ := doublestar.Match(pagePattern, d.Name()); !ok {
			return nil
		}

		if err := s.loadPage(path); err != nil {
			s.log.Warn("failed to load page file",
				zap.String("path", path), zap.Error(err))
			failed.Add(1)
		} else {
			loaded.Add(1)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("content seeding complete",
		zap.Int64("loaded", loaded.Load()),
		zap.Int64("failed", failed.Load()))
	return nil
}

// loadPage parses a single YAML page file and registers it.
func (s *Seeder) loadPage(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var page Page
	if err := yaml.Unmarshal(data, &page); err != nil {
		return err
	}

	return s.manager.Register(&page)
}

// SeedDefaults registers the built-in reference pages. Pages already
// loaded from the content directory win over the defaults.
func (s *Seeder) SeedDefaults() error {
	registered := 0
	for _, page := range defaultPages() {
		if _, exists := s.manager.Get(page.ID); exists {
			continue
		}
		if err := s.manager.Register(page); err != nil {
			return err
		}
		registered++
	}

	s.log.Info("default pages registered", zap.Int("count", registered))
	return nil
}
