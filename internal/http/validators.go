package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Flarenzy/rdap-registry/internal/ipaddr"
)

// parseAddressPath reads the {address} path value and rejects anything that
// is not a plain IPv4 or IPv6 address.
func parseAddressPath(r *http.Request) (string, error) {
	address := strings.TrimSpace(r.PathValue("address"))
	if !ipaddr.FamilyOfAddress(address).Valid() {
		return "", fmt.Errorf("invalid ip address %q", address)
	}
	return address, nil
}

// resolveHandle makes the path handle authoritative. A body handle that
// disagrees with it is an error.
func resolveHandle(pathHandle string, req *NetworkRequest) error {
	if req.Handle != "" && req.Handle != pathHandle {
		return fmt.Errorf("handle %q does not match path handle %q", req.Handle, pathHandle)
	}
	req.Handle = pathHandle
	return nil
}
