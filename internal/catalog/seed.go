package catalog

import "github.com/julianstephens/coachdesk/internal/models"

// Method IDs of the seeded catalog.
const (
	MethodSystemic    = "systemisches-coaching"
	MethodGROW        = "grow-modell"
	MethodLeadership  = "fuehrungskraefte-coaching"
	MethodStress      = "stress-resilienz"
	MethodPersonality = "persoenlichkeitsentwicklung"
	MethodVision      = "visionsarbeit"
	MethodSolution    = "loesungsfokussiert"
)

// SeedMethods returns the mock coaching-method catalog.
func SeedMethods() []models.CoachingMethod {
	return []models.CoachingMethod{
		{
			ID:          MethodSystemic,
			Name:        "Systemisches Coaching",
			Description: "Betrachtet Anliegen im Kontext von Beziehungen, Rollen und Wechselwirkungen im Umfeld.",
			DurationMin: 90,
			Category:    "Systemisch",
			Icon:        "network",
			Color:       "#4f46e5",
			Keywords:    []string{"kommunikation", "beziehungen", "system", "rollen"},
		},
		{
			ID:          MethodGROW,
			Name:        "GROW-Modell",
			Description: "Strukturierter Gesprächsleitfaden von Goal über Reality und Options bis Will.",
			DurationMin: 60,
			Category:    "Zielorientiert",
			Icon:        "target",
			Color:       "#16a34a",
			Keywords:    []string{"ziele", "struktur", "umsetzung"},
		},
		{
			ID:          MethodLeadership,
			Name:        "Führungskräfte-Coaching",
			Description: "Begleitet Führungskräfte bei Rollenklärung, Entscheidungen und Teamsteuerung.",
			DurationMin: 90,
			Category:    "Leadership",
			Icon:        "crown",
			Color:       "#ca8a04",
			Keywords:    []string{"führung", "leadership", "verantwortung", "entscheidungen"},
		},
		{
			ID:          MethodStress,
			Name:        "Stressbewältigung & Resilienz",
			Description: "Arbeitet an Belastungsmustern, Erholung und Achtsamkeit im Alltag.",
			DurationMin: 60,
			Category:    "Gesundheit",
			Icon:        "leaf",
			Color:       "#0d9488",
			Keywords:    []string{"stress", "resilienz", "achtsamkeit", "erholung"},
		},
		{
			ID:          MethodPersonality,
			Name:        "Persönlichkeitsentwicklung",
			Description: "Reflexion von Werten, Stärken und Selbstbild als Grundlage für Veränderung.",
			DurationMin: 75,
			Category:    "Persönlichkeit",
			Icon:        "user",
			Color:       "#db2777",
			Keywords:    []string{"werte", "stärken", "selbstbild"},
		},
		{
			ID:          MethodVision,
			Name:        "Visionsarbeit",
			Description: "Entwickelt eine tragfähige Vision und leitet daraus Prioritäten ab.",
			DurationMin: 120,
			Category:    "Strategie",
			Icon:        "compass",
			Color:       "#7c3aed",
			Keywords:    []string{"zukunft", "sinn", "prioritäten"},
		},
		{
			ID:          MethodSolution,
			Name:        "Lösungsfokussierte Kurzberatung",
			Description: "Kurze Interventionen, die vorhandene Ressourcen und Ausnahmen nutzen.",
			DurationMin: 45,
			Category:    "Lösungsorientiert",
			Icon:        "spark",
			Color:       "#ea580c",
			Keywords:    []string{"lösungen", "ressourcen", "skalierung"},
		},
	}
}

// SeedGuides returns the phase scripts for the methods that have one.
func SeedGuides() map[string][]models.GuidePhase {
	return map[string][]models.GuidePhase{
		MethodGROW: {
			{
				Name:       "Goal",
				MinMinutes: 10,
				MaxMinutes: 15,
				Questions: []string{
					"Was möchten Sie am Ende dieser Sitzung erreicht haben?",
					"Woran würden Sie merken, dass das Ziel erreicht ist?",
				},
				Tools: []string{"Zielformulierung SMART", "Skalierungsfrage"},
			},
			{
				Name:       "Reality",
				MinMinutes: 15,
				MaxMinutes: 20,
				Questions: []string{
					"Was passiert derzeit konkret?",
					"Was haben Sie bereits versucht?",
				},
				Tools: []string{"Ist-Analyse", "Ressourcenlandkarte"},
			},
			{
				Name:       "Options",
				MinMinutes: 15,
				MaxMinutes: 20,
				Questions: []string{
					"Welche Möglichkeiten sehen Sie?",
					"Was würde jemand tun, den Sie bewundern?",
				},
				Tools: []string{"Brainstorming", "Perspektivwechsel"},
			},
			{
				Name:       "Will",
				MinMinutes: 5,
				MaxMinutes: 10,
				Questions: []string{
					"Was genau werden Sie bis wann tun?",
					"Wie sicher sind Sie auf einer Skala von 1 bis 10?",
				},
				Tools: []string{"Aktionsplan", "Commitment-Skala"},
			},
		},
		MethodSystemic: {
			{
				Name:       "Auftragsklärung",
				MinMinutes: 10,
				MaxMinutes: 20,
				Questions: []string{
					"Was soll heute anders werden?",
					"Wer wäre noch an einer Veränderung interessiert?",
				},
				Tools: []string{"Auftragskarussell"},
			},
			{
				Name:       "Exploration",
				MinMinutes: 30,
				MaxMinutes: 45,
				Questions: []string{
					"Wie würde Ihr Team die Situation beschreiben?",
					"Was wäre anders, wenn das Problem verschwunden wäre?",
				},
				Tools: []string{"Systembrett", "Zirkuläre Fragen", "Genogramm"},
			},
			{
				Name:       "Intervention",
				MinMinutes: 15,
				MaxMinutes: 25,
				Questions: []string{
					"Welcher kleinste Schritt ist jetzt möglich?",
				},
				Tools: []string{"Reframing", "Hypothesenbildung"},
			},
			{
				Name:       "Abschluss",
				MinMinutes: 5,
				MaxMinutes: 10,
				Questions: []string{
					"Was nehmen Sie aus der heutigen Sitzung mit?",
				},
				Tools: []string{"Feedbackrunde"},
			},
		},
	}
}

// SeedClients returns the mock client catalog.
func SeedClients() []models.Client {
	return []models.Client{
		{
			ID:            "c-1001",
			FirstName:     "Anna",
			LastName:      "Becker",
			Email:         "anna.becker@example.de",
			CoachingGoals: "Ich möchte meine Führungskompetenzen entwickeln und mein Team besser steuern.",
			Status:        models.ClientStatusActive,
		},
		{
			ID:            "c-1002",
			FirstName:     "Jonas",
			LastName:      "Hoffmann",
			Email:         "jonas.hoffmann@example.de",
			CoachingGoals: "Mehr Work-Life-Balance und weniger Druck im Projektalltag.",
			Status:        models.ClientStatusActive,
		},
		{
			ID:            "c-1003",
			FirstName:     "Leonie",
			LastName:      "Schulz",
			Email:         "leonie.schulz@example.de",
			CoachingGoals: "Persönliche Weiterentwicklung und eine klare Vision für die nächsten Jahre.",
			Status:        models.ClientStatusPending,
		},
		{
			ID:            "c-1004",
			FirstName:     "Murat",
			LastName:      "Yilmaz",
			Email:         "murat.yilmaz@example.de",
			CoachingGoals: "Konflikte im Team klären.",
			Status:        models.ClientStatusPaused,
		},
		{
			ID:            "c-1005",
			FirstName:     "Sophie",
			LastName:      "Wagner",
			Email:         "sophie.wagner@example.de",
			CoachingGoals: "",
			Status:        models.ClientStatusInactive,
		},
	}
}

// Default returns stores populated with the seed data.
func Default() (*ClientStore, *Methods) {
	return NewClientStore(SeedClients()), NewMethods(SeedMethods(), SeedGuides())
}
