package http

import (
	"net/http"
	"time"

	"github.com/Flarenzy/rdap-registry/internal/bootstrap"
	"github.com/Flarenzy/rdap-registry/internal/domain"
	"github.com/Flarenzy/rdap-registry/internal/ipaddr"
	"github.com/Flarenzy/rdap-registry/internal/update"
)

// NetworkRequest is the payload accepted when creating or updating a network.
type NetworkRequest struct {
	Handle           string            `json:"handle" example:"NET-10-0-0-0-1"`
	StartAddress     string            `json:"startAddress" example:"10.0.0.0"`
	EndAddress       string            `json:"endAddress" example:"10.0.255.255"`
	IPVersion        string            `json:"ipVersion" example:"v4"`
	Name             string            `json:"name" example:"EXAMPLE-NET"`
	Type             string            `json:"type" example:"ALLOCATED"`
	Country          string            `json:"country" example:"NL"`
	ParentHandle     string            `json:"parentHandle" example:"NET-10-0-0-0-0"`
	Status           []string          `json:"status" example:"active"`
	Events           []EventRequest    `json:"events"`
	Links            []LinkRequest     `json:"links"`
	CustomProperties map[string]string `json:"customProperties"`
}

type EventRequest struct {
	Action string     `json:"eventAction" example:"registration"`
	Actor  string     `json:"eventActor" example:"registrar-1"`
	Date   *time.Time `json:"eventDate" example:"2024-05-10T15:04:05Z"`
}

type LinkRequest struct {
	Rel  string `json:"rel" example:"self"`
	Href string `json:"href" example:"https://rdap.example/ip/10.0.0.0"`
}

// UpdateResponse is returned when a create or update was accepted.
type UpdateResponse struct {
	Handle string `json:"handle" example:"NET-10-0-0-0-1"`
}

// ErrorResponse follows the RDAP error body: errorCode is the HTTP status,
// subErrorCode the validation code.
type ErrorResponse struct {
	Handle       string   `json:"handle,omitempty" example:"NET-10-0-0-0-1"`
	ErrorCode    int      `json:"errorCode" example:"400"`
	SubErrorCode int      `json:"subErrorCode,omitempty" example:"4001"`
	Description  []string `json:"description" example:"handle can not be empty"`
}

// NetworkResponse is the stored network with decoded addresses.
type NetworkResponse struct {
	Handle           string            `json:"handle" example:"NET-10-0-0-0-1"`
	StartAddress     string            `json:"startAddress" example:"10.0.0.0"`
	EndAddress       string            `json:"endAddress" example:"10.0.255.255"`
	IPVersion        string            `json:"ipVersion" example:"v4"`
	Name             string            `json:"name,omitempty" example:"EXAMPLE-NET"`
	Type             string            `json:"type,omitempty" example:"ALLOCATED"`
	Country          string            `json:"country,omitempty" example:"NL"`
	ParentHandle     string            `json:"parentHandle,omitempty"`
	Status           []string          `json:"status"`
	Events           []EventResponse   `json:"events"`
	Links            []LinkResponse    `json:"links"`
	CustomProperties map[string]string `json:"customProperties,omitempty"`
}

type EventResponse struct {
	Action string     `json:"eventAction"`
	Actor  string     `json:"eventActor,omitempty"`
	Date   *time.Time `json:"eventDate,omitempty"`
}

type LinkResponse struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// RedirectResponse is one entry of the network routing table.
type RedirectResponse struct {
	Key          string   `json:"key" example:"41.0.0.0/8"`
	IPVersion    string   `json:"ipVersion" example:"v4"`
	StartAddress string   `json:"startAddress" example:"41.0.0.0"`
	EndAddress   string   `json:"endAddress" example:"41.255.255.255"`
	URLs         []string `json:"urls" example:"https://rdap.afrinic.net/rdap/"`
}

func (r NetworkRequest) toInput() domain.NetworkInput {
	in := domain.NetworkInput{
		Handle:           r.Handle,
		StartAddress:     r.StartAddress,
		EndAddress:       r.EndAddress,
		IPVersion:        r.IPVersion,
		Name:             r.Name,
		Type:             r.Type,
		Country:          r.Country,
		ParentHandle:     r.ParentHandle,
		Status:           r.Status,
		CustomProperties: r.CustomProperties,
	}
	for _, e := range r.Events {
		event := domain.EventInput{Action: e.Action, Actor: e.Actor}
		if e.Date != nil {
			event.Date = *e.Date
		}
		in.Events = append(in.Events, event)
	}
	for _, l := range r.Links {
		in.Links = append(in.Links, domain.LinkInput{Rel: l.Rel, Href: l.Href})
	}
	return in
}

// updateToResponse returns the status and body for a pipeline outcome.
func updateToResponse(resp update.Response, successStatus int) (int, any) {
	if resp.Success() {
		return successStatus, UpdateResponse{Handle: resp.Handle}
	}
	return resp.Err.Status, ErrorResponse{
		Handle:       resp.Handle,
		ErrorCode:    resp.Err.Status,
		SubErrorCode: resp.Err.Code,
		Description:  []string{resp.Err.Message},
	}
}

func errorResponse(status int, description string) ErrorResponse {
	return ErrorResponse{ErrorCode: status, Description: []string{description}}
}

func internalError() ErrorResponse {
	return errorResponse(http.StatusInternalServerError, "internal server error")
}

func networkToResponse(n domain.Network) (NetworkResponse, error) {
	start, err := ipaddr.Decode(n.StartAddress)
	if err != nil {
		return NetworkResponse{}, err
	}
	end, err := ipaddr.Decode(n.EndAddress)
	if err != nil {
		return NetworkResponse{}, err
	}

	out := NetworkResponse{
		Handle:           n.Handle,
		StartAddress:     start.String(),
		EndAddress:       end.String(),
		IPVersion:        n.IPVersion.String(),
		Name:             n.Name,
		Type:             n.Type,
		Country:          n.Country,
		ParentHandle:     n.ParentHandle,
		Status:           make([]string, 0, len(n.Status)),
		Events:           make([]EventResponse, 0, len(n.Events)),
		Links:            make([]LinkResponse, 0, len(n.Links)),
		CustomProperties: n.CustomProperties,
	}
	out.Status = append(out.Status, n.Status...)
	for _, e := range n.Events {
		event := EventResponse{Action: e.Action, Actor: e.Actor}
		if !e.Date.IsZero() {
			date := e.Date.UTC()
			event.Date = &date
		}
		out.Events = append(out.Events, event)
	}
	for _, l := range n.Links {
		out.Links = append(out.Links, LinkResponse{Rel: l.Rel, Href: l.Href})
	}
	return out, nil
}

func redirectsToResponse(redirects []bootstrap.NetworkRedirect) []RedirectResponse {
	out := make([]RedirectResponse, 0, len(redirects))
	for _, r := range redirects {
		out = append(out, RedirectResponse{
			Key:          r.Key,
			IPVersion:    r.Family.String(),
			StartAddress: r.Param.StartAddress.String(),
			EndAddress:   r.Param.EndAddress.String(),
			URLs:         r.URLs,
		})
	}
	return out
}
