package nmcli

import (
	"reflect"
	"testing"

	"github.com/shazow/netmenu/network"
)

func TestParseConnections(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected []network.Connection
	}{
		{
			name:   "Typical listing",
			output: "home:802-11-wireless\noffice-vpn:vpn\nWired connection 1:802-3-ethernet\n",
			expected: []network.Connection{
				{Name: "home", Kind: "802-11-wireless"},
				{Name: "office-vpn", Kind: "vpn"},
				{Name: "Wired connection 1", Kind: "802-3-ethernet"},
			},
		},
		{
			name:   "Name containing a colon",
			output: "cafe: upstairs:802-11-wireless\n",
			expected: []network.Connection{
				{Name: "cafe: upstairs", Kind: "802-11-wireless"},
			},
		},
		{
			name:     "Empty output",
			output:   "",
			expected: nil,
		},
		{
			name:     "Malformed line skipped",
			output:   "garbage\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseConnections(tt.output)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("parseConnections() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseScan(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected []network.ScanResult
	}{
		{
			name:   "Typical scan",
			output: "HomeNet:WPA2:82\nCoffee::45\n",
			expected: []network.ScanResult{
				{SSID: "HomeNet", Security: "WPA2", Signal: 82},
				{SSID: "Coffee", Security: "", Signal: 45},
			},
		},
		{
			name:   "SSID containing colons",
			output: "my:weird:net:WPA1 WPA2:60\n",
			expected: []network.ScanResult{
				{SSID: "my:weird:net", Security: "WPA1 WPA2", Signal: 60},
			},
		},
		{
			name:   "Stray quotes stripped",
			output: "\"Quoted\":WPA2:70\n",
			expected: []network.ScanResult{
				{SSID: "Quoted", Security: "WPA2", Signal: 70},
			},
		},
		{
			name:     "Hidden network skipped",
			output:   ":WPA2:90\n",
			expected: nil,
		},
		{
			name:     "Non-numeric signal skipped",
			output:   "Net:WPA2:strong\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseScan(tt.output)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("parseScan() = %v, want %v", got, tt.expected)
			}
		})
	}
}
