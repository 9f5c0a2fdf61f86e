package parsing

import (
	"fmt"
	"regexp"
	"strconv"
)

// flexlmRx matches the usage line of `lmutil lmstat -f <feature>`:
//
//	Users of abaqus:  (Total of 50 licenses issued;  Total of 7 licenses in use)
var flexlmRx = regexp.MustCompile(
	`Users of (?P<feature>[\w.-]+):\s+\(Total of (?P<total>\d+) licenses? issued;\s+Total of (?P<used>\d+) licenses? in use\)`)

// ParseFlexLM extracts the counts from lmstat output. The -f flag already
// scopes the output to one feature, and the usage line may carry the product
// or vendor-daemon name rather than the ledger feature name, so the first
// usage block is taken without matching on the name. feature is used for
// error reporting only.
func ParseFlexLM(output []byte, feature string) (Counts, error) {
	match := flexlmRx.FindSubmatch(output)
	if match == nil {
		return Counts{}, fmt.Errorf("no usage line in lmstat output for feature %s", feature)
	}
	total, err := strconv.Atoi(string(match[2]))
	if err != nil {
		return Counts{}, fmt.Errorf("bad total for feature %s: %w", feature, err)
	}
	used, err := strconv.Atoi(string(match[3]))
	if err != nil {
		return Counts{}, fmt.Errorf("bad used count for feature %s: %w", feature, err)
	}
	return Counts{Used: used, Total: total}, nil
}
