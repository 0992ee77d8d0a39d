package launcher

import "strings"

// ActiveMarker is the two-character prefix denoting a connection that is
// currently in use.
const ActiveMarker = "**"

// OtherActions returns the fixed action entries appended to the display
// list. The first entry offers to flip the current networking state.
func OtherActions(enabled bool) []string {
	status := "Enable"
	if enabled {
		status = "Disable"
	}
	return []string{status + " Networking", "Launch Connection Manager"}
}

// MarkActive prefixes the active marker to entries whose name (the portion
// before the first colon) is in active. Already-marked entries are left
// alone, so marking is idempotent within a run.
func MarkActive(entries, active []string) []string {
	set := make(map[string]struct{}, len(active))
	for _, a := range active {
		set[a] = struct{}{}
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e
		if strings.HasPrefix(e, ActiveMarker) {
			continue
		}
		name, _, _ := strings.Cut(e, ":")
		if _, ok := set[name]; ok {
			out[i] = ActiveMarker + e
		}
	}
	return out
}

// BuildDisplayList assembles the full menu: marked SSID entries, a blank
// separator, marked VPN entries with a ":VPN" suffix, another separator,
// then the action entries. The blank lines render as unselectable gaps.
func BuildDisplayList(ssids, vpns, actions, active []string) []string {
	vpnEntries := make([]string, len(vpns))
	for i, v := range vpns {
		vpnEntries[i] = v + ":VPN"
	}

	var out []string
	out = append(out, MarkActive(ssids, active)...)
	out = append(out, "")
	out = append(out, MarkActive(vpnEntries, active)...)
	out = append(out, "")
	out = append(out, actions...)
	return out
}
