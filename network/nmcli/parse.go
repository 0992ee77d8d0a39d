package nmcli

import (
	"strconv"
	"strings"

	"github.com/shazow/netmenu/network"
)

// splitLines splits terse nmcli output into lines, dropping the trailing
// empty line left by the final newline.
func splitLines(out string) []string {
	lines := strings.Split(out, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// parseConnections parses `nmcli -t -f NAME,TYPE connection show` output.
// Each line is "name:kind"; names containing colons are kept intact by
// splitting on the last colon only.
func parseConnections(out string) []network.Connection {
	var conns []network.Connection
	for _, line := range splitLines(out) {
		i := strings.LastIndexByte(line, ':')
		if i < 0 {
			continue
		}
		conns = append(conns, network.Connection{
			Name: line[:i],
			Kind: line[i+1:],
		})
	}
	return conns
}

// parseScan parses `nmcli -t -f SSID,SECURITY,SIGNAL device wifi list`
// output. Lines have the form "ssid:security:signal". SSIDs and security
// strings may themselves contain colons, so the signal is split off the
// right first, then the security.
func parseScan(out string) []network.ScanResult {
	var results []network.ScanResult
	for _, line := range splitLines(out) {
		i := strings.LastIndexByte(line, ':')
		if i < 0 {
			continue
		}
		signal, err := strconv.Atoi(strings.TrimSpace(line[i+1:]))
		if err != nil {
			continue
		}
		rest := line[:i]
		var ssid, security string
		if j := strings.LastIndexByte(rest, ':'); j >= 0 {
			ssid, security = rest[:j], rest[j+1:]
		} else {
			ssid = rest
		}
		ssid = strings.ReplaceAll(ssid, `"`, "")
		if ssid == "" {
			// Hidden networks advertise an empty SSID; nothing to select.
			continue
		}
		results = append(results, network.ScanResult{
			SSID:     ssid,
			Security: strings.TrimSpace(security),
			Signal:   signal,
		})
	}
	return results
}
