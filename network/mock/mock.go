// Package mock provides an in-memory network.Backend for tests and demos.
package mock

import (
	"github.com/shazow/netmenu/network"
)

// Backend is a mock implementation of the network.Backend interface. Query
// results are plain fields, errors are injectable per method, and mutations
// are recorded so tests can assert exactly what was dispatched.
type Backend struct {
	Connections []network.Connection
	Active      []string
	Scan        []network.ScanResult
	Networking  bool

	ListConnectionsError   error
	ActiveConnectionsError error
	ScanError              error
	NetworkingError        error
	SetNetworkingError     error
	ConnectionActiveError  error
	ActivateError          error
	DeactivateError        error
	JoinError              error

	// Recorded mutations.
	NetworkingSet []bool
	Activated     []string
	Deactivated   []string
	Joined        []JoinCall
}

// JoinCall records one JoinNetwork invocation.
type JoinCall struct {
	SSID       string
	Passphrase string
}

// New creates a mock backend with a small believable inventory.
func New() *Backend {
	return &Backend{
		Connections: []network.Connection{
			{Name: "lo", Kind: "loopback"},
			{Name: "HomeNet", Kind: "802-11-wireless"},
			{Name: "office-vpn", Kind: "vpn"},
			{Name: "Wired connection 1", Kind: "802-3-ethernet"},
		},
		Active: []string{"HomeNet", "Wired connection 1"},
		Scan: []network.ScanResult{
			{SSID: "HomeNet", Security: "WPA2", Signal: 82},
			{SSID: "NeverGonnaGiveYouIP", Security: "WPA2", Signal: 61},
			{SSID: "Unencrypted_Honeypot", Signal: 44},
		},
		Networking: true,
	}
}

func (b *Backend) ListConnections() ([]network.Connection, error) {
	return b.Connections, b.ListConnectionsError
}

func (b *Backend) ActiveConnections() ([]string, error) {
	return b.Active, b.ActiveConnectionsError
}

func (b *Backend) ScanSSIDs(rescan bool) ([]network.ScanResult, error) {
	if b.ScanError != nil {
		return nil, b.ScanError
	}
	results := network.DedupeScanResults(b.Scan)
	network.SortScanResults(results)
	return results, nil
}

func (b *Backend) NetworkingEnabled() (bool, error) {
	return b.Networking, b.NetworkingError
}

func (b *Backend) SetNetworking(enabled bool) error {
	if b.SetNetworkingError != nil {
		return b.SetNetworkingError
	}
	b.Networking = enabled
	b.NetworkingSet = append(b.NetworkingSet, enabled)
	return nil
}

func (b *Backend) ConnectionActive(name string) (bool, error) {
	if b.ConnectionActiveError != nil {
		return false, b.ConnectionActiveError
	}
	for _, a := range b.Active {
		if a == name {
			return true, nil
		}
	}
	return false, nil
}

func (b *Backend) ActivateConnection(name string) error {
	if b.ActivateError != nil {
		return b.ActivateError
	}
	b.Activated = append(b.Activated, name)
	return nil
}

func (b *Backend) DeactivateConnection(name string) error {
	if b.DeactivateError != nil {
		return b.DeactivateError
	}
	b.Deactivated = append(b.Deactivated, name)
	return nil
}

func (b *Backend) JoinNetwork(ssid string, passphrase string) error {
	if b.JoinError != nil {
		return b.JoinError
	}
	b.Joined = append(b.Joined, JoinCall{SSID: ssid, Passphrase: passphrase})
	return nil
}
