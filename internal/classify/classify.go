// Package classify decides whether a filesystem change is a completed
// download candidate or noise from an in-progress write.
package classify

import (
	"os"
	"path/filepath"
	"strings"
)

// Op is the change kind reported by the filesystem subscription,
// reduced to the three cases the classifier cares about.
type Op uint8

const (
	// OpCreate indicates a new directory entry appeared.
	OpCreate Op = iota
	// OpRename indicates an entry's name changed. Browsers finalize a
	// download by renaming the temporary file to its real name.
	OpRename
	// OpOther covers every remaining change kind (writes, chmods, removes).
	OpOther
)

// Result is the classification of a single path/op pair.
type Result int

const (
	// Ignore means the change kind is irrelevant to download detection.
	Ignore Result = iota
	// Noise means the path is an in-progress artifact, a directory,
	// or no longer exists.
	Noise
	// Candidate means the path may be a completed download and should
	// be scheduled for settle confirmation.
	Candidate
)

// String returns a human-readable name for the result, for logging.
func (r Result) String() string {
	switch r {
	case Ignore:
		return "ignore"
	case Noise:
		return "noise"
	case Candidate:
		return "candidate"
	default:
		return "unknown"
	}
}

// DefaultInProgressSuffixes returns the filename suffixes browsers use
// for partially written downloads. The list is convention, not contract:
// an unrecognized temp extension slips through as a false negative.
func DefaultInProgressSuffixes() []string {
	return []string{
		".crdownload", // Chrome
		".tmp",
		".partial", // legacy Edge / IE
		".download",
	}
}

// Classifier applies the candidate rules with a configurable suffix set.
type Classifier struct {
	suffixes []string
}

// New creates a Classifier with the given in-progress suffixes.
// If suffixes is empty, the defaults are used.
func New(suffixes []string) *Classifier {
	if len(suffixes) == 0 {
		suffixes = DefaultInProgressSuffixes()
	}
	lowered := make([]string, len(suffixes))
	for i, s := range suffixes {
		lowered[i] = strings.ToLower(s)
	}
	return &Classifier{suffixes: lowered}
}

// Classify evaluates a path against the candidate rules, first match wins:
//
//  1. Change kinds other than create and rename are Ignore.
//  2. In-progress suffixes and dot-prefixed names are Noise.
//  3. Paths that are not currently a regular file are Noise.
//  4. Everything else is a Candidate.
//
// Classify has no side effects and never assumes the path still exists;
// it is safe to call with stale paths.
func (c *Classifier) Classify(path string, op Op) Result {
	if op != OpCreate && op != OpRename {
		return Ignore
	}

	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return Noise
	}
	lower := strings.ToLower(name)
	for _, suffix := range c.suffixes {
		if strings.HasSuffix(lower, suffix) {
			return Noise
		}
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Noise
	}

	return Candidate
}

// Suffixes returns a copy of the active in-progress suffix list.
func (c *Classifier) Suffixes() []string {
	out := make([]string, len(c.suffixes))
	copy(out, c.suffixes)
	return out
}
