package parsing

import (
	"bufio"
	"bytes"
	"regexp"
	"strconv"
	"strings"
)

// OLicense `olixtool -gw` output is a sequence of license blocks:
//
//	Application:     ftire_adams
//	  ...
//	  FloatCount:    4
//	  FloatsLockedBy:  user1@host1 #1
//	  FloatsLockedBy:  user2@host2 #1
//
// FloatCount is the licensed total; each FloatsLockedBy line is one
// checked-out seat.
var (
	olicenseAppRx   = regexp.MustCompile(`^\s*Application:\s+(\S+)`)
	olicenseCountRx = regexp.MustCompile(`^\s*FloatCount:\s+(\d+)`)
)

// ParseOLicense extracts counts for every application in the olixtool
// output, keyed by the lowercased application name.
func ParseOLicense(output []byte) map[string]Counts {
	features := make(map[string]Counts)

	var current string
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()

		if match := olicenseAppRx.FindStringSubmatch(line); match != nil {
			current = strings.ToLower(match[1])
			continue
		}
		if current == "" {
			continue
		}
		if match := olicenseCountRx.FindStringSubmatch(line); match != nil {
			total, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			counts := features[current]
			counts.Total += total
			features[current] = counts
			continue
		}
		if strings.Contains(line, "FloatsLockedBy:") {
			counts := features[current]
			counts.Used++
			features[current] = counts
		}
	}
	return features
}
