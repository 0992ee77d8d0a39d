//go:build linux

package main

import (
	"fmt"
	"log/slog"

	"github.com/shazow/netmenu/network"
	"github.com/shazow/netmenu/network/mock"
	"github.com/shazow/netmenu/network/nm"
	"github.com/shazow/netmenu/network/nmcli"
)

// GetBackend constructs the named network backend.
func GetBackend(name string, logger *slog.Logger) (network.Backend, error) {
	switch name {
	case "nmcli":
		return nmcli.New(logger), nil
	case "dbus":
		return nm.New(logger)
	case "mock":
		return mock.New(), nil
	}
	return nil, fmt.Errorf("unknown backend %q", name)
}
