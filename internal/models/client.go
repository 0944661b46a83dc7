package models

import "strings"

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusPending  ClientStatus = "pending"
	ClientStatusPaused   ClientStatus = "paused"
)

// Client is a coachee and their coaching profile
type Client struct {
	ID            string       `json:"id"`
	FirstName     string       `json:"first_name"`
	LastName      string       `json:"last_name"`
	Email         string       `json:"email"`
	CoachingGoals string       `json:"coaching_goals"`
	Status        ClientStatus `json:"status"`
}

// FullName joins the name parts, skipping empty ones.
func (c Client) FullName() string {
	return strings.TrimSpace(strings.Join([]string{c.FirstName, c.LastName}, " "))
}
