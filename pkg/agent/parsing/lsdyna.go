package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

// lsdynaRx matches one program row of the `lstc_qrun -R` license table:
//
//	MPPDYNA          12/30/2025          -     60    500 |     0
//
// The CPUS column may be a number or "-". USED/FREE are live counts.
var lsdynaRx = regexp.MustCompile(
	`(?m)^\s*(?P<program>[A-Za-z][\w-]*)\s+\d{2}/\d{2}/\d{4}\s+(?:\d+|-)\s+(?P<used>\d+)\s+(?P<free>\d+)\s*\|`)

// ParseLSDyna extracts counts for every program in the qrun output, keyed
// by the lowercased program name. total is used+free: LSTC reports the
// split rather than the licensed maximum per row.
func ParseLSDyna(output []byte) map[string]Counts {
	features := make(map[string]Counts)
	for _, match := range lsdynaRx.FindAllSubmatch(output, -1) {
		used, err := strconv.Atoi(string(match[2]))
		if err != nil {
			continue
		}
		free, err := strconv.Atoi(string(match[3]))
		if err != nil {
			continue
		}
		name := strings.ToLower(string(match[1]))
		features[name] = Counts{Used: used, Total: used + free}
	}
	return features
}
