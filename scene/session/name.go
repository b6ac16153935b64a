package session

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"steady", "shaky", "locked", "drifting", "panning", "tilting", "slow", "quick",
		"dusky", "golden", "overcast", "hazy", "sharp", "soft", "wide", "narrow",
		"tracked", "handheld", "craned", "dollied", "static", "rolling", "blurred", "crisp",
		"dim", "bright", "foggy", "grainy", "muted", "vivid", "quiet", "distant",
	}

	nouns = []string{
		"lens", "frame", "shutter", "aperture", "horizon", "vanishing", "plate", "matte",
		"tripod", "dolly", "crane", "slate", "take", "reel", "focus", "parallax",
		"witness", "marker", "beacon", "cone", "edge", "corner", "ridge", "facade",
		"lamp", "pole", "tile", "brick", "window", "door", "kerb", "sign",
	}
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateName creates a memorable session name in the format "adjective-noun"
func GenerateName() string {
	return adjectives[rng.Intn(len(adjectives))] + "-" + nouns[rng.Intn(len(nouns))]
}

// GenerateID combines a memorable name with a timestamp
func GenerateID() string {
	timestamp := time.Now().UTC().Format("20060102-150405")
	return GenerateName() + "-" + timestamp
}
