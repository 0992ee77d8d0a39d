package network

import "sort"

// DedupeScanResults collapses scan results that share an SSID, keeping the
// one with the strongest signal. When several access points report the same
// strength, the last one wins. The relative order of surviving entries is
// preserved.
func DedupeScanResults(results []ScanResult) []ScanResult {
	index := make(map[string]int)
	var out []ScanResult
	for _, r := range results {
		if i, ok := index[r.SSID]; ok {
			if r.Signal >= out[i].Signal {
				out[i] = r
			}
			continue
		}
		index[r.SSID] = len(out)
		out = append(out, r)
	}
	return out
}

// SortScanResults sorts scan results in place by descending signal strength.
// The sort is stable so equal-strength networks keep their scan order.
func SortScanResults(results []ScanResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Signal > results[j].Signal
	})
}
