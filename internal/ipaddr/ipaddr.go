// Package ipaddr encodes IP addresses as fixed-width hexadecimal text so that a
// store without a native CIDR type can answer range containment queries with
// plain string comparison. The width of an encoded address identifies its
// family: 8 characters for IPv4, 32 for IPv6.
package ipaddr

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

var (
	ErrInvalidAddress = errors.New("invalid ip address")
	ErrInvalidFamily  = errors.New("invalid ip version")
)

type Family uint8

const (
	FamilyInvalid Family = iota
	V4
	V6
)

const (
	hexCharSizeV4 = 8
	hexCharSizeV6 = 32
)

func (f Family) String() string {
	switch f {
	case V4:
		return "v4"
	case V6:
		return "v6"
	default:
		return "invalid"
	}
}

func (f Family) Valid() bool {
	return f == V4 || f == V6
}

// HexCharSize is the length of an encoded address of this family.
func (f Family) HexCharSize() int {
	switch f {
	case V4:
		return hexCharSizeV4
	case V6:
		return hexCharSizeV6
	default:
		return 0
	}
}

func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v4":
		return V4, nil
	case "v6":
		return V6, nil
	default:
		return FamilyInvalid, fmt.Errorf("%w: %q", ErrInvalidFamily, s)
	}
}

// Encode returns addr as lower-case hex of exactly f.HexCharSize() characters.
// IPv4-mapped IPv6 addresses are unmapped when encoded as V4.
func Encode(addr netip.Addr, f Family) (string, error) {
	if !addr.IsValid() {
		return "", ErrInvalidAddress
	}
	addr = addr.WithZone("")

	switch f {
	case V4:
		addr = addr.Unmap()
		if !addr.Is4() {
			return "", fmt.Errorf("%w: %s is not an ipv4 address", ErrInvalidAddress, addr)
		}
		b := addr.As4()
		return hex.EncodeToString(b[:]), nil
	case V6:
		if !addr.Is6() {
			return "", fmt.Errorf("%w: %s is not an ipv6 address", ErrInvalidAddress, addr)
		}
		b := addr.As16()
		return hex.EncodeToString(b[:]), nil
	default:
		return "", ErrInvalidFamily
	}
}

func EncodeString(s string, f Family) (string, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return Encode(addr, f)
}

func Decode(s string) (netip.Addr, error) {
	if _, err := FamilyOf(s); err != nil {
		return netip.Addr{}, err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	addr, ok := netip.AddrFromSlice(b)
	if !ok {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return addr, nil
}

// FamilyOf classifies an encoded address by its width alone.
func FamilyOf(s string) (Family, error) {
	switch len(s) {
	case hexCharSizeV4:
		return V4, nil
	case hexCharSizeV6:
		return V6, nil
	default:
		return FamilyInvalid, fmt.Errorf("%w: encoded width %d", ErrInvalidAddress, len(s))
	}
}

// FamilyOfAddress reports the family of a textual address, or FamilyInvalid.
func FamilyOfAddress(s string) Family {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return FamilyInvalid
	}
	if addr.Unmap().Is4() {
		return V4
	}
	return V6
}

// FamilyOfNetwork reports the family of a network written as addr/len, or
// FamilyInvalid when s is not in that form.
func FamilyOfNetwork(s string) Family {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "/") {
		return FamilyInvalid
	}
	prefix, err := netip.ParsePrefix(s)
	if err != nil {
		return FamilyInvalid
	}
	if prefix.Addr().Is4() {
		return V4
	}
	return V6
}

// EncodePrefix returns the encoded first and last address covered by prefix.
func EncodePrefix(prefix netip.Prefix) (string, string, Family, error) {
	if !prefix.IsValid() {
		return "", "", FamilyInvalid, ErrInvalidAddress
	}
	f := V6
	if prefix.Addr().Is4() {
		f = V4
	}

	r := netipx.RangeOfPrefix(prefix.Masked())
	start, err := Encode(r.From(), f)
	if err != nil {
		return "", "", FamilyInvalid, err
	}
	end, err := Encode(r.To(), f)
	if err != nil {
		return "", "", FamilyInvalid, err
	}
	return start, end, f, nil
}

// RangePredicate builds a condition that restricts rows to encoded addresses
// whose width agrees with their stored family tag:
//
//	((LENGTH(addr) = 8 AND family = 'v4') OR (LENGTH(addr) = 32 AND family = 'v6'))
//
// Column names are interpolated verbatim and must not come from user input.
func RangePredicate(addrColumn, familyColumn string) string {
	const tpl = "LENGTH(%s) = %d AND %s = '%s'"
	v4 := fmt.Sprintf(tpl, addrColumn, hexCharSizeV4, familyColumn, V4)
	v6 := fmt.Sprintf(tpl, addrColumn, hexCharSizeV6, familyColumn, V6)
	return "((" + v4 + ") OR (" + v6 + "))"
}
