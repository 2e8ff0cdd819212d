package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/myhit051/hatyai-restart-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Category struct {
	Slug   string `json:"slug"`
	NameTH string `json:"name_th"`
	NameEN string `json:"name_en"`
}

type CategoriesFile struct {
	Categories []Category `json:"categories"`
}

// Registry holds the seeded job-category catalog.
type Registry struct {
	mu         sync.RWMutex
	categories map[string]*Category
	order      []string
}

func NewRegistry() *Registry {
	return &Registry{
		categories: make(map[string]*Category),
	}
}

func LoadFromFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories file: %w", err)
	}

	var file CategoriesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse categories file: %w", err)
	}

	registry := NewRegistry()
	for i := range file.Categories {
		registry.Register(&file.Categories[i])
	}
	return registry, nil
}

func (r *Registry) Register(cat *Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[cat.Slug]; !ok {
		r.order = append(r.order, cat.Slug)
	}
	r.categories[cat.Slug] = cat
}

func (r *Registry) Get(slug string) *Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.categories[slug]
}

func (r *Registry) Exists(slug string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.categories[slug]
	return ok
}

// All returns the catalog in file order.
func (r *Registry) All() []*Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*Category, 0, len(r.order))
	for _, slug := range r.order {
		result = append(result, r.categories[slug])
	}
	return result
}

// SeedDB mirrors the catalog into the job_categories table so postings can
// join against it. Re-running with the same file is a no-op update.
func (r *Registry) SeedDB(db *gorm.DB) error {
	for _, cat := range r.All() {
		row := models.JobCategory{
			Slug:   cat.Slug,
			NameTH: cat.NameTH,
			NameEN: cat.NameEN,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name_th", "name_en", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", cat.Slug, err)
		}
	}
	return nil
}
