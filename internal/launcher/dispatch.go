package launcher

import (
	"os/exec"
	"strings"
)

// dispatch classifies the menu reply and issues the corresponding backend
// command. First match wins; an unrecognized selection is a no-op.
func (l *Launcher) dispatch(selection string, ssids, vpns, actions, active []string) error {
	switch selection {
	case actions[0]:
		return l.Backend.SetNetworking(strings.HasPrefix(selection, "Enable"))
	case actions[1]:
		l.launchEditor()
		return nil
	}

	ssid, security, ok := classify(selection, ssids, vpns, active)
	if !ok {
		l.Logger.Debug("unrecognized selection", "selection", selection)
		return nil
	}

	if l.isKnown(ssid) {
		return l.toggleConnection(ssid)
	}

	var passphrase string
	if security != "" {
		var err error
		passphrase, err = l.Menu.Input("Passphrase")
		if err != nil {
			return err
		}
		if passphrase == "" {
			l.Logger.Debug("passphrase entry cancelled")
			return nil
		}
	}
	return l.Backend.JoinNetwork(ssid, passphrase)
}

// classify resolves the selection to an (ssid, security) pair: either a
// scanned SSID entry or a VPN entry with its suffix and marker stripped.
func classify(selection string, ssids, vpns, active []string) (ssid, security string, ok bool) {
	for _, entry := range MarkActive(ssids, active) {
		if entry != selection {
			continue
		}
		name, sec, _ := strings.Cut(selection, ":")
		return cleanSSID(name), strings.TrimSpace(sec), true
	}

	name := strings.TrimSuffix(strings.TrimPrefix(selection, ActiveMarker), ":VPN")
	for _, v := range vpns {
		if v == name {
			return name, "", true
		}
	}
	return "", "", false
}

func cleanSSID(s string) string {
	s = strings.TrimPrefix(s, ActiveMarker)
	s = strings.ReplaceAll(s, `"`, "")
	return strings.TrimSpace(s)
}

// isKnown reports whether ssid names a saved connection profile. The first
// row of the listing is never matched; see DESIGN.md.
func (l *Launcher) isKnown(ssid string) bool {
	for i, c := range l.known {
		if i == 0 {
			continue
		}
		if c.Name == ssid {
			return true
		}
	}
	return false
}

// toggleConnection brings a saved connection down if it is activated, up
// otherwise.
func (l *Launcher) toggleConnection(name string) error {
	active, err := l.Backend.ConnectionActive(name)
	if err != nil {
		return err
	}
	if active {
		return l.Backend.DeactivateConnection(name)
	}
	return l.Backend.ActivateConnection(name)
}

// launchEditor starts the graphical connection editor detached. A missing
// editor binary is not an error.
func (l *Launcher) launchEditor() {
	editor := l.Editor
	if editor == "" {
		editor = DefaultEditor
	}
	cmd := exec.Command(editor)
	if err := cmd.Start(); err != nil {
		l.Logger.Debug("failed to launch connection editor", "editor", editor, "error", err)
		return
	}
	_ = cmd.Process.Release()
}
