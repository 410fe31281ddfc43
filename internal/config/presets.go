package config

import "sort"

// Samples are canned matrix inputs, one per notation flavor, usable
// anywhere the CLI takes a matrix argument via the @name shorthand.
var Samples = map[string]string{
	"identity3": "[[1,0,0],[0,1,0],[0,0,1]]",
	"magic3":    "8 1 6; 3 5 7; 4 9 2",
	"counting":  "1,2,3\n4,5,6",
	"singular2": "1 2\n2 4",
	"hilbert3":  "[[1,0.5,0.3333333333],[0.5,0.3333333333,0.25],[0.3333333333,0.25,0.2]]",
	"basis3":    "1 0 0\n0 1 0\n0 0 1",
}

// Sample returns the named sample input.
func Sample(name string) (string, bool) {
	s, ok := Samples[name]
	return s, ok
}

// ListSamples returns sample names in sorted order.
func ListSamples() []string {
	names := make([]string, 0, len(Samples))
	for name := range Samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
