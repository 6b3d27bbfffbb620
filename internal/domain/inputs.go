package domain

import "time"

// NetworkInput is the create/update payload of a network registration.
type NetworkInput struct {
	Handle           string
	StartAddress     string
	EndAddress       string
	IPVersion        string
	Name             string
	Type             string
	Country          string
	ParentHandle     string
	Status           []string
	Events           []EventInput
	Links            []LinkInput
	CustomProperties map[string]string
}

func (in NetworkInput) GetHandle() string {
	return in.Handle
}

type EventInput struct {
	Action string
	Actor  string
	Date   time.Time
}

type LinkInput struct {
	Rel  string
	Href string
}
