package domain

import (
	"time"

	"github.com/Flarenzy/rdap-registry/internal/ipaddr"
)

const ResourceTypeNetwork = "network"

// Network is an IP network registration. StartAddress and EndAddress hold the
// fixed-width hex encoding produced by package ipaddr.
type Network struct {
	ID                   int64
	Handle               string
	StartAddress         string
	EndAddress           string
	IPVersion            ipaddr.Family
	Name                 string
	Type                 string
	Country              string
	ParentHandle         string
	Status               []string
	Events               []Event
	Links                []Link
	CustomProperties     map[string]string
	CustomPropertiesJSON string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type Event struct {
	Action string
	Actor  string
	Date   time.Time
}

type Link struct {
	Rel  string
	Href string
}
