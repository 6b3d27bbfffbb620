// Package query parses network lookup keys into address ranges.
package query

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"

	"github.com/Flarenzy/rdap-registry/internal/ipaddr"
)

var ErrInvalidNetworkKey = errors.New("invalid network key")

// NetworkParam is a parsed network key with its inclusive address range.
type NetworkParam struct {
	Key          string
	Prefix       netip.Prefix
	Family       ipaddr.Family
	StartAddress netip.Addr
	EndAddress   netip.Addr
	StartHex     string
	EndHex       string
}

// ParseNetworkParam accepts addr/len or a bare address, which is treated as a
// single host prefix. Host bits of addr/len are masked off.
func ParseNetworkParam(key string) (*NetworkParam, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidNetworkKey)
	}

	var prefix netip.Prefix
	if strings.Contains(key, "/") {
		p, err := netip.ParsePrefix(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidNetworkKey, key, err)
		}
		prefix = p.Masked()
	} else {
		addr, err := netip.ParseAddr(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidNetworkKey, key, err)
		}
		addr = addr.WithZone("")
		prefix = netip.PrefixFrom(addr, addr.BitLen())
	}

	startHex, endHex, family, err := ipaddr.EncodePrefix(prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidNetworkKey, key, err)
	}
	r := netipx.RangeOfPrefix(prefix)

	return &NetworkParam{
		Key:          key,
		Prefix:       prefix,
		Family:       family,
		StartAddress: r.From(),
		EndAddress:   r.To(),
		StartHex:     startHex,
		EndHex:       endHex,
	}, nil
}

// Contains reports whether addr falls inside the parsed range.
func (p *NetworkParam) Contains(addr netip.Addr) bool {
	return p.Prefix.Contains(addr.Unmap())
}
