package catalog

import (
	"fmt"
	"sort"

	"github.com/julianstephens/coachdesk/internal/constants"
	"github.com/julianstephens/coachdesk/internal/errors"
	"github.com/julianstephens/coachdesk/internal/logger"
	"github.com/julianstephens/coachdesk/internal/models"
)

// ClientStore holds the client catalog. Deleting a client never touches sessions
// that reference it; those degrade to the unknown-client label.
//
// ClientStore is not safe for concurrent use.
type ClientStore struct {
	clients map[string]models.Client
	order   []string
}

func NewClientStore(initial []models.Client) *ClientStore {
	s := &ClientStore{clients: make(map[string]models.Client, len(initial))}
	for _, c := range initial {
		if _, dup := s.clients[c.ID]; dup {
			continue
		}
		s.clients[c.ID] = c
		s.order = append(s.order, c.ID)
	}
	return s
}

// List returns clients in insertion order.
func (s *ClientStore) List() []models.Client {
	out := make([]models.Client, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.clients[id])
	}
	return out
}

// ListByStatus returns clients with the given status sorted by last name.
func (s *ClientStore) ListByStatus(status models.ClientStatus) []models.Client {
	var out []models.Client
	for _, c := range s.List() {
		if c.Status == status {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastName < out[j].LastName
	})
	return out
}

func (s *ClientStore) Get(id string) (models.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return models.Client{}, &errors.NotFoundError{Kind: "client", ID: id}
	}
	return c, nil
}

func (s *ClientStore) Add(c models.Client) error {
	if c.ID == "" {
		return fmt.Errorf("client id is required")
	}
	if _, ok := s.clients[c.ID]; ok {
		return fmt.Errorf("client already exists: %s", c.ID)
	}
	if c.Status == "" {
		c.Status = models.ClientStatusPending
	}
	s.clients[c.ID] = c
	s.order = append(s.order, c.ID)
	return nil
}

func (s *ClientStore) Update(c models.Client) error {
	if _, ok := s.clients[c.ID]; !ok {
		return &errors.NotFoundError{Kind: "client", ID: c.ID}
	}
	s.clients[c.ID] = c
	return nil
}

func (s *ClientStore) Delete(id string) error {
	if _, ok := s.clients[id]; !ok {
		return &errors.NotFoundError{Kind: "client", ID: id}
	}
	delete(s.clients, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Resolve looks up the client a session points at. A missing client yields a
// ReferentialIntegrityWarning alongside a placeholder client carrying the unknown label.
func (s *ClientStore) Resolve(session models.Session) (models.Client, error) {
	c, ok := s.clients[session.ClientID]
	if ok {
		return c, nil
	}
	logger.Warn("Session references unknown client", "session", session.ID, "client", session.ClientID)
	return models.Client{ID: session.ClientID, FirstName: constants.UnknownClientLabel},
		&errors.ReferentialIntegrityWarning{SessionID: session.ID, ClientID: session.ClientID}
}

// Label returns the display name for a client id, degrading to the unknown-client label.
func (s *ClientStore) Label(clientID string) string {
	c, ok := s.clients[clientID]
	if !ok || c.FullName() == "" {
		return constants.UnknownClientLabel
	}
	return c.FullName()
}
