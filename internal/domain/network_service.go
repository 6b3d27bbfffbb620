package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"github.com/Flarenzy/rdap-registry/internal/ipaddr"
	"github.com/Flarenzy/rdap-registry/internal/update"
	"github.com/Flarenzy/rdap-registry/internal/validation"
)

const (
	maxHandleLength       = 100
	maxNameLength         = 255
	maxTypeLength         = 255
	maxCountryLength      = 2
	maxStatusLength       = 20
	maxEventActionLength  = 100
	maxEventActorLength   = 100
	maxLinkRelLength      = 100
	maxLinkHrefLength     = 2048
	maxParentHandleLength = 100
)

type networkService struct {
	networks NetworkRepository
	create   *update.Pipeline[NetworkInput, *Network]
	update   *update.Pipeline[NetworkInput, *Network]
}

func NewNetworkService(networks NetworkRepository, logger *slog.Logger) NetworkService {
	s := &networkService{networks: networks}
	s.create = update.New(ResourceTypeNetwork, logger, update.Hooks[NetworkInput, *Network]{
		Validate: s.validateCreate,
		Convert:  s.convertToModel,
		Persist:  s.persistCreate,
	})
	s.update = update.New(ResourceTypeNetwork, logger, update.Hooks[NetworkInput, *Network]{
		Validate: s.validateUpdate,
		Convert:  s.convertToModel,
		Persist:  s.persistUpdate,
	})
	return s
}

func (s *networkService) CreateNetwork(ctx context.Context, input NetworkInput) (update.Response, error) {
	return s.create.Execute(ctx, input)
}

func (s *networkService) UpdateNetwork(ctx context.Context, input NetworkInput) (update.Response, error) {
	return s.update.Execute(ctx, input)
}

func (s *networkService) GetNetworkByAddress(ctx context.Context, address string) (Network, error) {
	family := ipaddr.FamilyOfAddress(address)
	if !family.Valid() {
		return Network{}, fmt.Errorf("%w: invalid ip", ErrInvalidInput)
	}
	encoded, err := ipaddr.EncodeString(address, family)
	if err != nil {
		return Network{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.networks.FindByAddress(ctx, family, encoded)
}

func (s *networkService) validateCreate(ctx context.Context, input NetworkInput) (*validation.Result, error) {
	result := &validation.Result{}
	validateWithoutIPVersion(input, result)
	if err := result.CheckHandleNotExistForCreate(ctx, s.networks, input.Handle); err != nil {
		return nil, err
	}
	validateIPVersion(input, result)
	return result, nil
}

func (s *networkService) validateUpdate(ctx context.Context, input NetworkInput) (*validation.Result, error) {
	result := &validation.Result{}
	validateWithoutIPVersion(input, result)
	if err := result.CheckHandleExistForUpdate(ctx, s.networks, input.Handle); err != nil {
		return nil, err
	}
	validateIPVersion(input, result)
	return result, nil
}

func validateWithoutIPVersion(input NetworkInput, result *validation.Result) {
	result.CheckNotEmptyAndMaxLength(input.Handle, maxHandleLength, "handle")
	result.CheckNotEmpty(input.StartAddress, "startAddress")
	result.CheckIPAddress(input.StartAddress, "startAddress")
	result.CheckNotEmpty(input.EndAddress, "endAddress")
	result.CheckIPAddress(input.EndAddress, "endAddress")
	result.CheckMaxLength(input.Name, maxNameLength, "name")
	result.CheckMaxLength(input.Type, maxTypeLength, "type")
	result.CheckMaxLength(input.Country, maxCountryLength, "country")
	result.CheckMaxLength(input.ParentHandle, maxParentHandleLength, "parentHandle")
	for _, status := range input.Status {
		result.CheckNotEmptyAndMaxLength(status, maxStatusLength, "status")
	}
	for _, link := range input.Links {
		result.CheckMaxLength(link.Rel, maxLinkRelLength, "link.rel")
		result.CheckNotEmptyAndMaxLength(link.Href, maxLinkHrefLength, "link.href")
	}
	checkEvents(input.Events, result)
}

func checkEvents(events []EventInput, result *validation.Result) {
	for _, event := range events {
		result.CheckNotEmptyAndMaxLength(event.Action, maxEventActionLength, "event.eventAction")
		result.CheckMaxLength(event.Actor, maxEventActorLength, "event.eventActor")
		result.CheckMinMaxDate(event.Date, validation.MinTimestamp, validation.MaxTimestamp, "event.eventDate")
	}
}

// validateIPVersion requires a known version that both addresses belong to,
// with start not above end.
func validateIPVersion(input NetworkInput, result *validation.Result) {
	result.CheckIPVersion(input.IPVersion, "ipVersion")
	if result.HasError() {
		return
	}

	family, _ := ipaddr.ParseFamily(input.IPVersion)
	start, err := ipaddr.EncodeString(input.StartAddress, family)
	if err != nil {
		result.Add(validation.InconsistentAddress(fmt.Sprintf("startAddress is not an ip%s address", family)))
		return
	}
	end, err := ipaddr.EncodeString(input.EndAddress, family)
	if err != nil {
		result.Add(validation.InconsistentAddress(fmt.Sprintf("endAddress is not an ip%s address", family)))
		return
	}
	if start > end {
		result.Add(validation.InconsistentAddress("startAddress must not be greater than endAddress"))
	}
}

func (s *networkService) convertToModel(input NetworkInput) (*Network, error) {
	family, err := ipaddr.ParseFamily(input.IPVersion)
	if err != nil {
		return nil, validation.InvalidIPVersion("ipVersion")
	}
	start, err := ipaddr.EncodeString(input.StartAddress, family)
	if err != nil {
		return nil, validation.InvalidIP("startAddress")
	}
	end, err := ipaddr.EncodeString(input.EndAddress, family)
	if err != nil {
		return nil, validation.InvalidIP("endAddress")
	}

	network := &Network{
		Handle:       input.Handle,
		StartAddress: start,
		EndAddress:   end,
		IPVersion:    family,
		Name:         input.Name,
		Type:         input.Type,
		Country:      input.Country,
		ParentHandle: input.ParentHandle,
		Status:       append([]string(nil), input.Status...),
	}
	for _, e := range input.Events {
		network.Events = append(network.Events, Event{Action: e.Action, Actor: e.Actor, Date: e.Date})
	}
	for _, l := range input.Links {
		network.Links = append(network.Links, Link{Rel: l.Rel, Href: l.Href})
	}
	if err := convertCustomProperties(input.CustomProperties, network); err != nil {
		return nil, err
	}
	return network, nil
}

func convertCustomProperties(props map[string]string, network *Network) error {
	network.CustomProperties = make(map[string]string, len(props))
	maps.Copy(network.CustomProperties, props)

	raw, err := json.Marshal(network.CustomProperties)
	if err != nil {
		return fmt.Errorf("serialize custom properties: %w", err)
	}
	network.CustomPropertiesJSON = string(raw)
	return nil
}

func (s *networkService) persistCreate(ctx context.Context, network *Network) error {
	err := s.networks.WithinTx(ctx, func(store NetworkStore) error {
		if err := store.Save(ctx, network); err != nil {
			return fmt.Errorf("save network: %w", err)
		}
		if err := store.SaveStatus(ctx, network); err != nil {
			return fmt.Errorf("save status: %w", err)
		}
		if err := store.SaveBaseAttributes(ctx, network); err != nil {
			return fmt.Errorf("save base attributes: %w", err)
		}
		return nil
	})
	return translatePersistError(network.Handle, err)
}

func (s *networkService) persistUpdate(ctx context.Context, network *Network) error {
	err := s.networks.WithinTx(ctx, func(store NetworkStore) error {
		if err := store.Update(ctx, network); err != nil {
			return fmt.Errorf("update network: %w", err)
		}
		if err := store.SaveStatus(ctx, network); err != nil {
			return fmt.Errorf("save status: %w", err)
		}
		if err := store.SaveBaseAttributes(ctx, network); err != nil {
			return fmt.Errorf("save base attributes: %w", err)
		}
		return nil
	})
	return translatePersistError(network.Handle, err)
}

// translatePersistError maps store races onto the same errors the existence
// pre-checks report.
func translatePersistError(handle string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrConflict):
		return validation.HandleConflict(handle)
	case errors.Is(err, ErrNotFound):
		return validation.HandleNotFound(handle)
	default:
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
}
