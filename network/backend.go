package network

import "strings"

// Connection represents a known (saved) connection profile.
type Connection struct {
	Name string
	Kind string // e.g. "802-11-wireless", "vpn", "ethernet"
}

// ScanResult represents a single visible wireless network.
type ScanResult struct {
	SSID     string
	Security string // empty for open networks
	Signal   int    // 0-100
}

// Entry returns the display form of a scan result: "ssid:security", or just
// the ssid for open networks. The signal is used for ordering only.
func (r ScanResult) Entry() string {
	if r.Security == "" {
		return r.SSID
	}
	return r.SSID + ":" + r.Security
}

// Backend defines the interface for querying and commanding the network
// manager. Query methods degrade to empty results on failure; mutation
// methods report failure to the caller.
type Backend interface {
	// ListConnections returns all saved connection profiles, in the order
	// the backend reports them.
	ListConnections() ([]Connection, error)
	// ActiveConnections returns the names of currently active connections.
	ActiveConnections() ([]string, error)
	// ScanSSIDs returns visible wireless networks, deduplicated by SSID
	// (strongest signal wins) and sorted by descending signal. When rescan
	// is false, cached scan results are used.
	ScanSSIDs(rescan bool) ([]ScanResult, error)
	// NetworkingEnabled reports whether global networking is enabled.
	NetworkingEnabled() (bool, error)

	// SetNetworking enables or disables global networking.
	SetNetworking(enabled bool) error
	// ConnectionActive reports whether the named saved connection is
	// currently activated.
	ConnectionActive(name string) (bool, error)
	// ActivateConnection brings up a saved connection by name.
	ActivateConnection(name string) error
	// DeactivateConnection takes down a saved connection by name.
	DeactivateConnection(name string) error
	// JoinNetwork creates a new wifi connection for ssid and connects to
	// it. An empty passphrase means an open network.
	JoinNetwork(ssid string, passphrase string) error
}

// VPNConnections filters connections for VPN profiles.
func VPNConnections(conns []Connection) []string {
	var names []string
	for _, c := range conns {
		if strings.Contains(c.Kind, "vpn") {
			names = append(names, c.Name)
		}
	}
	return names
}
