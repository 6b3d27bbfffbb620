// Package bootstrap turns RDAP bootstrap registry entries into network
// redirects: routing records that point an address range at the services
// authoritative for it.
package bootstrap

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Flarenzy/rdap-registry/internal/ipaddr"
	"github.com/Flarenzy/rdap-registry/internal/query"
)

var ErrMalformedEntry = errors.New("malformed bootstrap entry")

type NetworkRedirect struct {
	Key    string
	Family ipaddr.Family
	Param  query.NetworkParam
	URLs   []string
}

// NetworkParser turns a network key into its address range. A nil param or a
// non-nil error both mean the key is unusable.
type NetworkParser func(key string) (*query.NetworkParam, error)

// Builder holds no state between calls and is safe for concurrent use.
type Builder struct {
	logger   *slog.Logger
	parse    NetworkParser
	validate *validator.Validate
}

func NewBuilder(logger *slog.Logger, parse NetworkParser) *Builder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if parse == nil {
		parse = query.ParseNetworkParam
	}
	return &Builder{
		logger:   logger,
		parse:    parse,
		validate: validator.New(),
	}
}

// Build returns at most one redirect for key. Unusable input is logged and
// yields an empty slice; it never fails the caller.
func (b *Builder) Build(key string, registryURLs []string) []NetworkRedirect {
	redirects := make([]NetworkRedirect, 0, 1)

	urls, err := b.cleanURLs(registryURLs)
	if err != nil {
		b.logger.Error("ignore bootstrap entry, urls are empty or invalid", "key", key, "urls", registryURLs, "err", err.Error())
		return redirects
	}

	family := ipaddr.FamilyOfNetwork(key)
	if !family.Valid() {
		b.logger.Error("ignore bootstrap entry, invalid network", "key", key, "urls", registryURLs)
		return redirects
	}

	param, err := b.parse(key)
	if err != nil {
		b.logger.Error("ignore bootstrap entry, invalid network", "key", key, "urls", registryURLs, "err", err.Error())
		return redirects
	}
	if param == nil {
		b.logger.Error("ignore bootstrap entry, generate network query param failed", "key", key, "urls", registryURLs)
		return redirects
	}

	return append(redirects, NetworkRedirect{
		Key:    key,
		Family: param.Family,
		Param:  *param,
		URLs:   urls,
	})
}

// cleanURLs drops blank entries and requires every remaining one to be an
// absolute URL.
func (b *Builder) cleanURLs(registryURLs []string) ([]string, error) {
	urls := make([]string, 0, len(registryURLs))
	for _, u := range registryURLs {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if err := b.validate.Var(u, "required,url"); err != nil {
			return nil, errors.Join(ErrMalformedEntry, err)
		}
		urls = append(urls, u)
	}
	if len(urls) == 0 {
		return nil, ErrMalformedEntry
	}
	return urls, nil
}
