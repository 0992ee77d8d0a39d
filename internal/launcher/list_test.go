package launcher

import (
	"reflect"
	"testing"
)

func TestOtherActions(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		expected []string
	}{
		{
			name:     "Networking on offers disable",
			enabled:  true,
			expected: []string{"Disable Networking", "Launch Connection Manager"},
		},
		{
			name:     "Networking off offers enable",
			enabled:  false,
			expected: []string{"Enable Networking", "Launch Connection Manager"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OtherActions(tt.enabled)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("OtherActions(%v) = %v, want %v", tt.enabled, got, tt.expected)
			}
		})
	}
}

func TestMarkActive(t *testing.T) {
	entries := []string{"X:WPA2", "Y:WPA2", "Z"}
	active := []string{"Y", "Z"}

	got := MarkActive(entries, active)
	expected := []string{"X:WPA2", "**Y:WPA2", "**Z"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("MarkActive() = %v, want %v", got, expected)
	}
}

func TestMarkActive_Idempotent(t *testing.T) {
	entries := []string{"X:WPA2", "Y:WPA2"}
	active := []string{"Y"}

	once := MarkActive(entries, active)
	twice := MarkActive(once, active)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("marking twice changed the result: %v != %v", twice, once)
	}
}

func TestBuildDisplayList(t *testing.T) {
	got := BuildDisplayList(
		[]string{"X:WPA2"},
		[]string{"pia"},
		[]string{"Enable Networking", "Launch Connection Manager"},
		[]string{"pia"},
	)
	expected := []string{
		"X:WPA2",
		"",
		"**pia:VPN",
		"",
		"Enable Networking",
		"Launch Connection Manager",
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("BuildDisplayList() = %v, want %v", got, expected)
	}
}

func TestBuildDisplayList_Empty(t *testing.T) {
	got := BuildDisplayList(nil, nil, []string{"Enable Networking", "Launch Connection Manager"}, nil)
	expected := []string{"", "", "Enable Networking", "Launch Connection Manager"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("BuildDisplayList() = %v, want %v", got, expected)
	}
}
