package catalog

import (
	stderrors "errors"
	"testing"

	"github.com/julianstephens/coachdesk/internal/constants"
	"github.com/julianstephens/coachdesk/internal/errors"
	"github.com/julianstephens/coachdesk/internal/models"
)

func TestMethods_GetAndGuide(t *testing.T) {
	_, methods := Default()

	m, err := methods.Get(MethodGROW)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if m.DurationMin != 60 {
		t.Errorf("expected GROW duration 60, got %d", m.DurationMin)
	}

	phases, ok := methods.Guide(MethodGROW)
	if !ok {
		t.Fatal("expected GROW to have a guide")
	}
	names := []string{"Goal", "Reality", "Options", "Will"}
	if len(phases) != len(names) {
		t.Fatalf("expected %d phases, got %d", len(names), len(phases))
	}
	for i, name := range names {
		if phases[i].Name != name {
			t.Errorf("phase %d: expected %s, got %s", i, name, phases[i].Name)
		}
	}

	if _, ok := methods.Guide(MethodVision); ok {
		t.Error("expected no guide for the vision method")
	}

	_, err = methods.Get("does-not-exist")
	if !stderrors.Is(err, errors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMethods_AllReturnsCopy(t *testing.T) {
	_, methods := Default()
	all := methods.All()
	all[0].Name = "changed"

	again := methods.All()
	if again[0].Name == "changed" {
		t.Error("mutating All() result leaked into the catalog")
	}
}

func TestMethods_Categories(t *testing.T) {
	_, methods := Default()
	cats := methods.Categories()
	if len(cats) != len(SeedMethods()) {
		t.Errorf("expected one category per seeded method, got %v", cats)
	}
	if got := methods.ByCategory("Persönlichkeit"); len(got) != 1 || got[0].ID != MethodPersonality {
		t.Errorf("unexpected ByCategory result: %+v", got)
	}
}

func TestClientStore_ResolveUnknownClient(t *testing.T) {
	clients, _ := Default()

	known, err := clients.Resolve(models.Session{ID: "s-1", ClientID: "c-1001"})
	if err != nil {
		t.Fatalf("unexpected error for known client: %v", err)
	}
	if known.FullName() != "Anna Becker" {
		t.Errorf("expected Anna Becker, got %q", known.FullName())
	}

	placeholder, err := clients.Resolve(models.Session{ID: "s-2", ClientID: "ghost"})
	var warning *errors.ReferentialIntegrityWarning
	if !stderrors.As(err, &warning) {
		t.Fatalf("expected ReferentialIntegrityWarning, got %v", err)
	}
	if warning.SessionID != "s-2" || warning.ClientID != "ghost" {
		t.Errorf("unexpected warning contents: %+v", warning)
	}
	if placeholder.FullName() != constants.UnknownClientLabel {
		t.Errorf("expected placeholder label, got %q", placeholder.FullName())
	}
}

func TestClientStore_DeleteDoesNotAffectLabelLookupsOfOthers(t *testing.T) {
	clients, _ := Default()

	if err := clients.Delete("c-1002"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := clients.Label("c-1002"); got != constants.UnknownClientLabel {
		t.Errorf("expected unknown label after delete, got %q", got)
	}
	if got := clients.Label("c-1003"); got != "Leonie Schulz" {
		t.Errorf("expected Leonie Schulz, got %q", got)
	}
	if got := len(clients.List()); got != len(SeedClients())-1 {
		t.Errorf("expected %d clients, got %d", len(SeedClients())-1, got)
	}

	err := clients.Delete("c-1002")
	if !stderrors.Is(err, errors.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestClientStore_AddAndUpdate(t *testing.T) {
	clients := NewClientStore(nil)

	if err := clients.Add(models.Client{ID: "c-1", FirstName: "Eva"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	c, err := clients.Get("c-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if c.Status != models.ClientStatusPending {
		t.Errorf("expected new client to default to pending, got %s", c.Status)
	}
	if err := clients.Add(models.Client{ID: "c-1"}); err == nil {
		t.Error("expected duplicate add to fail")
	}

	c.Status = models.ClientStatusActive
	if err := clients.Update(c); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got := clients.ListByStatus(models.ClientStatusActive); len(got) != 1 {
		t.Errorf("expected 1 active client, got %d", len(got))
	}

	if err := clients.Update(models.Client{ID: "missing"}); !stderrors.Is(err, errors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
