package dataview

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a column name may be from the wanted one.
const maxSuggestDistance = 3

// Suggest returns the candidate closest to want, ignoring case, when it is within a
// small edit distance. It is used to hint at typos in role bindings.
func Suggest(want string, candidates []string) (string, bool) {
	want = strings.ToLower(strings.TrimSpace(want))
	if want == "" {
		return "", false
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(want, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" || bestDist == 0 {
		return "", false
	}
	return best, true
}
