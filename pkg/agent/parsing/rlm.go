package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

// rlmRx matches one feature block of `rlmutil rlmstat -a -p`:
//
//	converge_super v3.0
//	    count: 1000, # reservations: 0, inuse: 93, exp: 31-jan-2026
var rlmRx = regexp.MustCompile(
	`(?m)^\s*(?P<feature>[\w-]+) v[\d.]+\n\s+count:\s*(?P<count>\d+),.*inuse:\s*(?P<inuse>\d+)`)

// ParseRLM extracts counts for every feature in the rlmstat output, keyed
// by the lowercased feature name.
func ParseRLM(output []byte) map[string]Counts {
	features := make(map[string]Counts)
	for _, match := range rlmRx.FindAllSubmatch(output, -1) {
		total, err := strconv.Atoi(string(match[2]))
		if err != nil {
			continue
		}
		used, err := strconv.Atoi(string(match[3]))
		if err != nil {
			continue
		}
		name := strings.ToLower(string(match[1]))
		features[name] = Counts{Used: used, Total: total}
	}
	return features
}
