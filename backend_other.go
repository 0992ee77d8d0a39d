//go:build !linux

package main

import (
	"fmt"
	"log/slog"

	"github.com/shazow/netmenu/network"
	"github.com/shazow/netmenu/network/mock"
	"github.com/shazow/netmenu/network/nmcli"
)

// GetBackend constructs the named network backend. The dbus backend needs
// the system bus and is only available on linux.
func GetBackend(name string, logger *slog.Logger) (network.Backend, error) {
	switch name {
	case "nmcli":
		return nmcli.New(logger), nil
	case "mock":
		return mock.New(), nil
	case "dbus":
		return nil, fmt.Errorf("dbus backend: %w", network.ErrNotSupported)
	}
	return nil, fmt.Errorf("unknown backend %q", name)
}
