// Package parsing holds the vendor license-server output parsers. Each
// parser is a pure function from raw tool output to structured counts so
// it can be tested against captured fixtures.
package parsing

// Counts is the used/total pair reported for one feature.
type Counts struct {
	Used  int
	Total int
}
