package ipaddr

import (
	"errors"
	"net/netip"
	"testing"
)

func TestEncodeRoundTripsFamily(t *testing.T) {
	cases := []struct {
		addr   string
		family Family
		want   string
	}{
		{addr: "10.0.0.1", family: V4, want: "0a000001"},
		{addr: "255.255.255.255", family: V4, want: "ffffffff"},
		{addr: "0.0.0.0", family: V4, want: "00000000"},
		{addr: "2001:db8::1", family: V6, want: "20010db8000000000000000000000001"},
		{addr: "::", family: V6, want: "00000000000000000000000000000000"},
	}

	for _, tc := range cases {
		encoded, err := EncodeString(tc.addr, tc.family)
		if err != nil {
			t.Fatalf("encode %s: %v", tc.addr, err)
		}
		if encoded != tc.want {
			t.Fatalf("encode %s: expected %s, got %s", tc.addr, tc.want, encoded)
		}
		if len(encoded) != tc.family.HexCharSize() {
			t.Fatalf("encode %s: expected %d chars, got %d", tc.addr, tc.family.HexCharSize(), len(encoded))
		}

		family, err := FamilyOf(encoded)
		if err != nil {
			t.Fatalf("family of %s: %v", encoded, err)
		}
		if family != tc.family {
			t.Fatalf("family of %s: expected %v, got %v", encoded, tc.family, family)
		}

		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("decode %s: %v", encoded, err)
		}
		if decoded != netip.MustParseAddr(tc.addr) {
			t.Fatalf("decode %s: expected %s, got %s", encoded, tc.addr, decoded)
		}
	}
}

func TestEncodeUnmapsIPv4MappedAddress(t *testing.T) {
	encoded, err := EncodeString("::ffff:192.0.2.1", V4)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if encoded != "c0000201" {
		t.Fatalf("unexpected encoding: %s", encoded)
	}
}

func TestEncodeRejectsFamilyMismatch(t *testing.T) {
	if _, err := EncodeString("2001:db8::1", V4); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
	if _, err := EncodeString("10.0.0.1", V6); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
}

func TestEncodeRejectsMalformedAddress(t *testing.T) {
	if _, err := EncodeString("10.0.0.256", V4); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
	if _, err := Encode(netip.Addr{}, V4); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress for zero addr, got %v", err)
	}
	if _, err := EncodeString("10.0.0.1", FamilyInvalid); !errors.Is(err, ErrInvalidFamily) {
		t.Fatalf("expected ErrInvalidFamily, got %v", err)
	}
}

func TestEncodedOrderMatchesNumericOrder(t *testing.T) {
	lo, _ := EncodeString("9.255.255.255", V4)
	hi, _ := EncodeString("10.0.0.0", V4)
	if !(lo < hi) {
		t.Fatalf("expected %s < %s", lo, hi)
	}
}

func TestFamilyOfRejectsUnknownWidth(t *testing.T) {
	if _, err := FamilyOf("abc"); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
}

func TestParseFamily(t *testing.T) {
	if f, err := ParseFamily("V4"); err != nil || f != V4 {
		t.Fatalf("expected v4, got %v %v", f, err)
	}
	if f, err := ParseFamily("v6"); err != nil || f != V6 {
		t.Fatalf("expected v6, got %v %v", f, err)
	}
	if _, err := ParseFamily("v5"); !errors.Is(err, ErrInvalidFamily) {
		t.Fatalf("expected ErrInvalidFamily, got %v", err)
	}
}

func TestFamilyOfNetwork(t *testing.T) {
	cases := map[string]Family{
		"10.0.0.0/8":    V4,
		"2001:db8::/32": V6,
		"10.0.0.0":      FamilyInvalid,
		"bad-key":       FamilyInvalid,
		"10.0.0.0/33":   FamilyInvalid,
	}
	for key, want := range cases {
		if got := FamilyOfNetwork(key); got != want {
			t.Fatalf("%s: expected %v, got %v", key, want, got)
		}
	}
}

func TestEncodePrefix(t *testing.T) {
	start, end, family, err := EncodePrefix(netip.MustParsePrefix("10.0.0.0/8"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if family != V4 || start != "0a000000" || end != "0affffff" {
		t.Fatalf("unexpected range: %v %s-%s", family, start, end)
	}
}

func TestRangePredicate(t *testing.T) {
	got := RangePredicate("start_address", "ip_version")
	want := "((LENGTH(start_address) = 8 AND ip_version = 'v4') OR (LENGTH(start_address) = 32 AND ip_version = 'v6'))"
	if got != want {
		t.Fatalf("unexpected predicate:\n got %s\nwant %s", got, want)
	}
}
