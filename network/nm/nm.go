//go:build linux

// Package nm implements a network.Backend over D-Bus, talking to
// NetworkManager directly instead of going through the nmcli binary.
package nm

import (
	"fmt"
	"log/slog"

	gonetworkmanager "github.com/Wifx/gonetworkmanager/v3"
	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"

	"github.com/shazow/netmenu/network"
)

const (
	nmDest          = "org.freedesktop.NetworkManager"
	nmObjectPath    = "/org/freedesktop/NetworkManager"
	nmIface         = "org.freedesktop.NetworkManager"
	nmSettingsPath  = "/org/freedesktop/NetworkManager/Settings"
	nmSettingsIface = "org.freedesktop.NetworkManager.Settings"
	nmConnIface     = "org.freedesktop.NetworkManager.Settings.Connection"
	nmActiveIface   = "org.freedesktop.NetworkManager.Connection.Active"
)

// Backend talks to NetworkManager over the system bus.
type Backend struct {
	nm       gonetworkmanager.NetworkManager
	settings gonetworkmanager.Settings
	bus      *dbus.Conn
	logger   *slog.Logger
}

// New creates a D-Bus backed Backend, or fails if NetworkManager is not
// reachable on the system bus.
func New(logger *slog.Logger) (*Backend, error) {
	nm, err := gonetworkmanager.NewNetworkManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create network manager client: %w", network.ErrNotAvailable)
	}
	settings, err := gonetworkmanager.NewSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", network.ErrNotAvailable)
	}
	bus, err := dbus.SystemBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to system bus: %w", err)
	}
	return &Backend{nm: nm, settings: settings, bus: bus, logger: logger}, nil
}

// ListConnections returns all saved connection profiles.
func (b *Backend) ListConnections() ([]network.Connection, error) {
	known, err := b.settings.ListConnections()
	if err != nil {
		return nil, err
	}
	var conns []network.Connection
	for _, kc := range known {
		s, err := kc.GetSettings()
		if err != nil {
			continue
		}
		c, ok := s["connection"]
		if !ok {
			continue
		}
		name, _ := c["id"].(string)
		kind, _ := c["type"].(string)
		if name == "" {
			continue
		}
		conns = append(conns, network.Connection{Name: name, Kind: kind})
	}
	return conns, nil
}

// ActiveConnections returns the names of currently active connections.
func (b *Backend) ActiveConnections() ([]string, error) {
	active, err := b.nm.GetPropertyActiveConnections()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, ac := range active {
		id, err := ac.GetPropertyID()
		if err != nil {
			continue
		}
		names = append(names, id)
	}
	return names, nil
}

// ScanSSIDs returns visible wireless networks, strongest access point per
// SSID, sorted by descending signal.
func (b *Backend) ScanSSIDs(rescan bool) ([]network.ScanResult, error) {
	dev, err := b.wirelessDevice()
	if err != nil {
		return nil, err
	}
	if rescan {
		if err := dev.RequestScan(); err != nil {
			// A scan in progress makes RequestScan fail; cached results
			// are still usable.
			b.logger.Debug("wifi scan request failed", "error", err)
		}
	}
	aps, err := dev.GetAccessPoints()
	if err != nil {
		return nil, err
	}
	var results []network.ScanResult
	for _, ap := range aps {
		ssid, err := ap.GetPropertySSID()
		if err != nil || ssid == "" {
			continue
		}
		strength, _ := ap.GetPropertyStrength()
		results = append(results, network.ScanResult{
			SSID:     ssid,
			Security: securityString(ap),
			Signal:   int(strength),
		})
	}
	results = network.DedupeScanResults(results)
	network.SortScanResults(results)
	return results, nil
}

func securityString(ap gonetworkmanager.AccessPoint) string {
	flags, _ := ap.GetPropertyFlags()
	wpaFlags, _ := ap.GetPropertyWPAFlags()
	rsnFlags, _ := ap.GetPropertyRSNFlags()
	switch {
	case rsnFlags > 0:
		return "WPA2"
	case wpaFlags > 0:
		return "WPA1"
	case uint32(flags)&uint32(gonetworkmanager.Nm80211APFlagsPrivacy) != 0:
		return "WEP"
	}
	return ""
}

// NetworkingEnabled reports whether global networking is enabled.
func (b *Backend) NetworkingEnabled() (bool, error) {
	v, err := b.bus.Object(nmDest, nmObjectPath).GetProperty(nmIface + ".NetworkingEnabled")
	if err != nil {
		return false, err
	}
	enabled, ok := v.Value().(bool)
	if !ok {
		return false, fmt.Errorf("unexpected NetworkingEnabled type: %w", network.ErrOperationFailed)
	}
	return enabled, nil
}

// SetNetworking enables or disables global networking. gonetworkmanager does
// not wrap the Enable method, so it is called directly.
func (b *Backend) SetNetworking(enabled bool) error {
	return b.bus.Object(nmDest, nmObjectPath).Call(nmIface+".Enable", 0, enabled).Err
}

// ConnectionActive reports whether the named connection is activated.
func (b *Backend) ConnectionActive(name string) (bool, error) {
	active, err := b.nm.GetPropertyActiveConnections()
	if err != nil {
		return false, err
	}
	for _, ac := range active {
		id, err := ac.GetPropertyID()
		if err != nil || id != name {
			continue
		}
		state, err := ac.GetPropertyState()
		if err != nil {
			return false, err
		}
		return state == gonetworkmanager.NmActiveConnectionStateActivated, nil
	}
	return false, nil
}

// ActivateConnection brings up a saved connection by name, letting
// NetworkManager pick the device.
func (b *Backend) ActivateConnection(name string) error {
	path, err := b.connectionPath(name)
	if err != nil {
		return err
	}
	root := dbus.ObjectPath("/")
	return b.bus.Object(nmDest, nmObjectPath).Call(nmIface+".ActivateConnection", 0, path, root, root).Err
}

// DeactivateConnection takes down a saved connection by name.
func (b *Backend) DeactivateConnection(name string) error {
	v, err := b.bus.Object(nmDest, nmObjectPath).GetProperty(nmIface + ".ActiveConnections")
	if err != nil {
		return err
	}
	paths, ok := v.Value().([]dbus.ObjectPath)
	if !ok {
		return fmt.Errorf("unexpected ActiveConnections type: %w", network.ErrOperationFailed)
	}
	for _, p := range paths {
		idv, err := b.bus.Object(nmDest, p).GetProperty(nmActiveIface + ".Id")
		if err != nil {
			continue
		}
		if id, ok := idv.Value().(string); ok && id == name {
			return b.bus.Object(nmDest, nmObjectPath).Call(nmIface+".DeactivateConnection", 0, p).Err
		}
	}
	return fmt.Errorf("active connection %q: %w", name, network.ErrNotFound)
}

// JoinNetwork creates a new wifi connection and connects to it.
func (b *Backend) JoinNetwork(ssid string, passphrase string) error {
	dev, err := b.wirelessDevice()
	if err != nil {
		return err
	}
	iface, _ := dev.GetPropertyInterface()

	connection := map[string]map[string]interface{}{
		"connection": {
			"id":             ssid,
			"uuid":           uuid.New().String(),
			"type":           "802-11-wireless",
			"interface-name": iface,
			"autoconnect":    true,
		},
		"802-11-wireless": {
			"mode": "infrastructure",
			"ssid": []byte(ssid),
		},
		"ipv4": {"method": "auto"},
		"ipv6": {"method": "auto"},
	}
	if passphrase != "" {
		connection["802-11-wireless"]["security"] = "802-11-wireless-security"
		connection["802-11-wireless-security"] = map[string]interface{}{
			"key-mgmt": "wpa-psk",
			"psk":      passphrase,
		}
	}

	if ap := b.strongestAccessPoint(dev, ssid); ap != nil {
		_, err = b.nm.AddAndActivateWirelessConnection(connection, dev, ap)
	} else {
		_, err = b.nm.AddAndActivateConnection(connection, dev)
	}
	return err
}

func (b *Backend) wirelessDevice() (gonetworkmanager.DeviceWireless, error) {
	devices, err := b.nm.GetDevices()
	if err != nil {
		return nil, err
	}
	for _, device := range devices {
		if dev, ok := device.(gonetworkmanager.DeviceWireless); ok {
			return dev, nil
		}
	}
	return nil, fmt.Errorf("no wireless device: %w", network.ErrNotFound)
}

func (b *Backend) strongestAccessPoint(dev gonetworkmanager.DeviceWireless, ssid string) gonetworkmanager.AccessPoint {
	aps, err := dev.GetAccessPoints()
	if err != nil {
		return nil
	}
	var best gonetworkmanager.AccessPoint
	var bestStrength uint8
	for _, ap := range aps {
		s, err := ap.GetPropertySSID()
		if err != nil || s != ssid {
			continue
		}
		strength, _ := ap.GetPropertyStrength()
		if best == nil || strength > bestStrength {
			best = ap
			bestStrength = strength
		}
	}
	return best
}

// connectionPath resolves a saved connection name to its settings object
// path via raw D-Bus, since activation wants the path rather than the id.
func (b *Backend) connectionPath(name string) (dbus.ObjectPath, error) {
	var paths []dbus.ObjectPath
	err := b.bus.Object(nmDest, nmSettingsPath).Call(nmSettingsIface+".ListConnections", 0).Store(&paths)
	if err != nil {
		return "", err
	}
	for _, p := range paths {
		var s map[string]map[string]dbus.Variant
		if err := b.bus.Object(nmDest, p).Call(nmConnIface+".GetSettings", 0).Store(&s); err != nil {
			continue
		}
		if idv, ok := s["connection"]["id"]; ok {
			if id, ok := idv.Value().(string); ok && id == name {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("connection %q: %w", name, network.ErrNotFound)
}
