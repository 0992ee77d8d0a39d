package launcher

import "testing"

func TestClassify(t *testing.T) {
	ssids := []string{"X:WPA2", "Open Net"}
	vpns := []string{"pia"}
	active := []string{"X", "pia"}

	tests := []struct {
		name      string
		selection string
		ssid      string
		security  string
		ok        bool
	}{
		{
			name:      "Active SSID entry",
			selection: "**X:WPA2",
			ssid:      "X",
			security:  "WPA2",
			ok:        true,
		},
		{
			name:      "Open network without security suffix",
			selection: "Open Net",
			ssid:      "Open Net",
			security:  "",
			ok:        true,
		},
		{
			name:      "Active VPN entry",
			selection: "**pia:VPN",
			ssid:      "pia",
			security:  "",
			ok:        true,
		},
		{
			name:      "Inactive VPN entry",
			selection: "pia:VPN",
			ssid:      "pia",
			security:  "",
			ok:        true,
		},
		{
			name:      "Unrecognized selection",
			selection: "garbage",
			ok:        false,
		},
		{
			name:      "Blank separator line",
			selection: "",
			ok:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ssid, security, ok := classify(tt.selection, ssids, vpns, active)
			if ok != tt.ok || ssid != tt.ssid || security != tt.security {
				t.Errorf("classify(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.selection, ssid, security, ok, tt.ssid, tt.security, tt.ok)
			}
		})
	}
}

func TestCleanSSID(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{`**"Cafe"`, "Cafe"},
		{" padded ", "padded"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := cleanSSID(tt.in); got != tt.out {
			t.Errorf("cleanSSID(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}
