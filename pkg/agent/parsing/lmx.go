package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

// lmxRx matches one feature block of `lmxendutil -licstat`:
//
//	Feature: CatiaV5Reader Version: 21.0 Vendor: ALTAIR
//	...
//	15 of 25 license(s) used
var lmxRx = regexp.MustCompile(
	`(?ms)^Feature: (?P<feature>[\w-]+) .*?^(?P<used>\d+) of (?P<total>\d+) license\(s\) used`)

// ParseLMX extracts counts for every feature in the licstat output, keyed
// by the lowercased feature name.
func ParseLMX(output []byte) map[string]Counts {
	features := make(map[string]Counts)
	for _, match := range lmxRx.FindAllSubmatch(output, -1) {
		used, err := strconv.Atoi(string(match[2]))
		if err != nil {
			continue
		}
		total, err := strconv.Atoi(string(match[3]))
		if err != nil {
			continue
		}
		name := strings.ToLower(string(match[1]))
		features[name] = Counts{Used: used, Total: total}
	}
	return features
}
