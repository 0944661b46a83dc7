package catalog

import (
	"github.com/julianstephens/coachdesk/internal/errors"
	"github.com/julianstephens/coachdesk/internal/models"
)

// Methods is the read-only coaching-method catalog with optional guide scripts.
type Methods struct {
	methods []models.CoachingMethod
	byID    map[string]int
	guides  map[string][]models.GuidePhase
}

func NewMethods(methods []models.CoachingMethod, guides map[string][]models.GuidePhase) *Methods {
	m := &Methods{
		methods: make([]models.CoachingMethod, len(methods)),
		byID:    make(map[string]int, len(methods)),
		guides:  make(map[string][]models.GuidePhase, len(guides)),
	}
	copy(m.methods, methods)
	for i, method := range m.methods {
		m.byID[method.ID] = i
	}
	for id, phases := range guides {
		m.guides[id] = append([]models.GuidePhase(nil), phases...)
	}
	return m
}

// All returns the methods in catalog order.
func (m *Methods) All() []models.CoachingMethod {
	out := make([]models.CoachingMethod, len(m.methods))
	copy(out, m.methods)
	return out
}

func (m *Methods) Get(id string) (models.CoachingMethod, error) {
	i, ok := m.byID[id]
	if !ok {
		return models.CoachingMethod{}, &errors.NotFoundError{Kind: "method", ID: id}
	}
	return m.methods[i], nil
}

// Guide returns the ordered phase script for a method. Not every method has one.
func (m *Methods) Guide(methodID string) ([]models.GuidePhase, bool) {
	phases, ok := m.guides[methodID]
	if !ok {
		return nil, false
	}
	return append([]models.GuidePhase(nil), phases...), true
}

// Categories returns the distinct categories in first-seen order.
func (m *Methods) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, method := range m.methods {
		if !seen[method.Category] {
			seen[method.Category] = true
			out = append(out, method.Category)
		}
	}
	return out
}

// ByCategory filters the catalog, preserving catalog order.
func (m *Methods) ByCategory(category string) []models.CoachingMethod {
	var out []models.CoachingMethod
	for _, method := range m.methods {
		if method.Category == category {
			out = append(out, method)
		}
	}
	return out
}
