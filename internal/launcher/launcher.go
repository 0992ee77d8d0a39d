// Package launcher runs the single collect, build, select, dispatch cycle
// that makes up a netmenu invocation.
package launcher

import (
	"log/slog"

	"github.com/shazow/netmenu/network"
)

// DefaultEditor is the graphical connection editor launched by the
// "Launch Connection Manager" action.
const DefaultEditor = "nm-connection-editor"

// Menu is the external line-selection program. An empty string with a nil
// error means the user cancelled.
type Menu interface {
	Select(lines []string, prompt string) (string, error)
	Input(prompt string) (string, error)
}

// Launcher wires the network backend and the menu program together.
type Launcher struct {
	Backend network.Backend
	Menu    Menu
	Editor  string
	Rescan  bool
	Logger  *slog.Logger

	// known is the saved-connection listing captured at collect time, in
	// backend order; dispatch matches selections against it.
	known []network.Connection
}

// Run performs one full cycle. Query failures degrade to empty lists so a
// partially available backend still produces a usable menu; mutation
// failures are returned to the caller.
func (l *Launcher) Run() error {
	l.collect()

	scan, err := l.Backend.ScanSSIDs(l.Rescan)
	if err != nil {
		l.Logger.Debug("wifi scan failed", "error", err)
	}
	active, err := l.Backend.ActiveConnections()
	if err != nil {
		l.Logger.Debug("active connection query failed", "error", err)
	}
	enabled, err := l.Backend.NetworkingEnabled()
	if err != nil {
		l.Logger.Debug("networking status query failed", "error", err)
		enabled = false
	}

	ssids := make([]string, len(scan))
	for i, r := range scan {
		ssids[i] = r.Entry()
	}
	vpns := network.VPNConnections(l.known)
	actions := OtherActions(enabled)

	selection, err := l.Menu.Select(BuildDisplayList(ssids, vpns, actions, active), "Connections")
	if err != nil {
		return err
	}
	if selection == "" {
		l.Logger.Debug("selection cancelled")
		return nil
	}
	return l.dispatch(selection, ssids, vpns, actions, active)
}

func (l *Launcher) collect() {
	conns, err := l.Backend.ListConnections()
	if err != nil {
		l.Logger.Debug("connection listing failed", "error", err)
	}
	l.known = conns
}
