package model

import (
	"time"

	"github.com/google/uuid"
)

// LayoutTemplate is a reusable arrangement: a grid and the items on it.
// Opening a template gives every item a fresh ID.
type LayoutTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"created_at"`
	Grid        GridSize `json:"grid"`
	Items       []Item   `json:"items"`
}

// NewLayoutTemplate captures the grid and items of a layout.
func NewLayoutTemplate(name, description string, layout Layout) LayoutTemplate {
	return LayoutTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Grid:        layout.Grid,
		Items:       copyItems(layout.Items),
	}
}

// ToLayout creates a new layout from this template.
func (t LayoutTemplate) ToLayout(name string) Layout {
	items := make([]Item, len(t.Items))
	for i, it := range t.Items {
		items[i] = NewItem(it.Label, it.Size(), it.Position())
	}
	return Layout{Name: name, Grid: t.Grid, Items: items}
}

// TemplateStore holds a collection of layout templates.
type TemplateStore struct {
	Templates []LayoutTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []LayoutTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t LayoutTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns a list of template names for UI dropdowns.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *LayoutTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

func copyItems(items []Item) []Item {
	cp := make([]Item, len(items))
	copy(cp, items)
	return cp
}
