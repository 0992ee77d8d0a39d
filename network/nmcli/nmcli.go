// Package nmcli implements a network.Backend by shelling out to the
// NetworkManager command-line tool.
package nmcli

import (
	"bytes"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/google/uuid"

	"github.com/shazow/netmenu/network"
)

// Runner executes a command and returns its standard output. It exists so
// tests can substitute canned output for real subprocess invocations.
type Runner interface {
	Run(name string, args ...string) (string, error)
}

type execRunner struct {
	logger *slog.Logger
}

// Run blocks until the command exits and its output is fully read, so no
// child is left writing into a full pipe buffer.
func (r execRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	r.logger.Debug("exec", "cmd", name, "args", args)
	if err := cmd.Run(); err != nil {
		return stdout.String(), fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return stdout.String(), nil
}

// Backend talks to NetworkManager through the nmcli binary.
type Backend struct {
	runner Runner
	logger *slog.Logger
}

// New creates a Backend that spawns real nmcli processes.
func New(logger *slog.Logger) *Backend {
	return &Backend{
		runner: execRunner{logger: logger},
		logger: logger,
	}
}

// NewWithRunner creates a Backend with a custom Runner.
func NewWithRunner(runner Runner, logger *slog.Logger) *Backend {
	return &Backend{runner: runner, logger: logger}
}

// ListConnections returns all saved connection profiles.
func (b *Backend) ListConnections() ([]network.Connection, error) {
	out, err := b.runner.Run("nmcli", "-t", "-f", "NAME,TYPE", "connection", "show")
	if err != nil {
		return nil, err
	}
	return parseConnections(out), nil
}

// ActiveConnections returns the names of currently active connections.
func (b *Backend) ActiveConnections() ([]string, error) {
	out, err := b.runner.Run("nmcli", "-t", "-f", "NAME", "connection", "show", "--active")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// ScanSSIDs returns visible wireless networks, strongest access point per
// SSID, sorted by descending signal.
func (b *Backend) ScanSSIDs(rescan bool) ([]network.ScanResult, error) {
	mode := "yes"
	if !rescan {
		mode = "no"
	}
	out, err := b.runner.Run("nmcli", "-t", "-f", "SSID,SECURITY,SIGNAL", "device", "wifi", "list", "--rescan", mode)
	if err != nil {
		return nil, err
	}
	results := network.DedupeScanResults(parseScan(out))
	network.SortScanResults(results)
	return results, nil
}

// NetworkingEnabled reports whether global networking is enabled.
func (b *Backend) NetworkingEnabled() (bool, error) {
	out, err := b.runner.Run("nmcli", "networking")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) == "enabled", nil
}

// SetNetworking enables or disables global networking.
func (b *Backend) SetNetworking(enabled bool) error {
	state := "off"
	if enabled {
		state = "on"
	}
	_, err := b.runner.Run("nmcli", "networking", state)
	return err
}

// ConnectionActive reports whether the named connection is activated. nmcli
// only prints a GENERAL section for connections that are up, so the absence
// of "activated" means the connection is down.
func (b *Backend) ConnectionActive(name string) (bool, error) {
	out, err := b.runner.Run("nmcli", "-t", "-f", "GENERAL.STATE", "connection", "show", name)
	if err != nil {
		return false, err
	}
	return strings.Contains(out, "activated"), nil
}

// ActivateConnection brings up a saved connection by name.
func (b *Backend) ActivateConnection(name string) error {
	_, err := b.runner.Run("nmcli", "connection", "up", "id", name)
	return err
}

// DeactivateConnection takes down a saved connection by name.
func (b *Backend) DeactivateConnection(name string) error {
	_, err := b.runner.Run("nmcli", "connection", "down", "id", name)
	return err
}

// JoinNetwork creates a new wifi connection and connects to it. For secured
// networks a profile is added under a client-generated UUID so the follow-up
// activation cannot be confused by SSIDs containing quoting or separators.
func (b *Backend) JoinNetwork(ssid string, passphrase string) error {
	if passphrase == "" {
		_, err := b.runner.Run("nmcli", "device", "wifi", "connect", ssid)
		return err
	}

	id := uuid.New().String()
	_, err := b.runner.Run("nmcli", "connection", "add",
		"type", "wifi",
		"con-name", ssid,
		"connection.uuid", id,
		"ssid", ssid,
		"wifi-sec.key-mgmt", "wpa-psk",
		"wifi-sec.psk", passphrase)
	if err != nil {
		return err
	}
	_, err = b.runner.Run("nmcli", "connection", "up", "uuid", id)
	return err
}
