package internal

import (
	"net"

	"github.com/google/uuid"
)

const shortUuidLen = 6

// Short ids are enough to tell rounds apart in logs.
func NewShortUuid() string {
	return uuid.NewString()[:shortUuidLen]
}

// HostIpNet returns the first non-loopback IPv4 network of the host.
// Analytics rows are keyed by it. Falls back to 127.0.0.1/32.
func HostIpNet() net.IPNet {
	fallback := net.IPNet{IP: net.IPv4(127, 0, 0, 1), Mask: net.CIDRMask(32, 32)}

	ifaces, err := net.Interfaces()
	if err != nil {
		return fallback
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip := ipnet.IP.To4(); ip != nil && !ip.IsLoopback() {
				return net.IPNet{IP: ip, Mask: net.CIDRMask(32, 32)}
			}
		}
	}

	return fallback
}
