// Package utils holds small helpers shared by the sample data generator.
package utils

import (
	"fmt"
	"math/rand/v2"
)

var randomAdjectives = []string{
	"brave",
	"bright",
	"calm",
	"clever",
	"eager",
	"gentle",
	"keen",
	"lively",
	"nimble",
	"swift",
}

var randomNouns = []string{
	"otter",
	"panda",
	"quill",
	"raven",
	"falcon",
	"harbor",
	"lantern",
	"meadow",
	"spruce",
	"willow",
}

var randomExtensions = []string{
	"go",
	"md",
	"json",
	"yaml",
	"png",
	"txt",
	"py",
	"sh",
}

// RandomFileName returns an adjective-noun file name with a random extension.
func RandomFileName(rng *rand.Rand) string {
	return fmt.Sprintf("%s-%s.%s", randomWord(rng, randomAdjectives), randomWord(rng, randomNouns), randomWord(rng, randomExtensions))
}

func randomWord(rng *rand.Rand, list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rng.IntN(len(list))]
}
