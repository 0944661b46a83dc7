package models

// CoachingMethod is a catalog entry describing a coaching approach
type CoachingMethod struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	DurationMin int      `json:"duration_min"` // canonical session length
	Category    string   `json:"category"`
	Icon        string   `json:"icon,omitempty"`
	Color       string   `json:"color,omitempty"`
	Keywords    []string `json:"keywords"`
}

// GuidePhase is one ordered stage of a method's session script
type GuidePhase struct {
	Name       string   `json:"name"`
	MinMinutes int      `json:"min_minutes"`
	MaxMinutes int      `json:"max_minutes"`
	Questions  []string `json:"questions"`
	Tools      []string `json:"tools"`
}

// MethodSnapshot is the copy of a method embedded in a session so that later
// catalog changes do not alter how the session is displayed.
type MethodSnapshot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (m CoachingMethod) Snapshot() *MethodSnapshot {
	return &MethodSnapshot{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Description: m.Description,
	}
}
