// Copyright 2026 The Boxshell Authors
// SPDX-License-Identifier: Apache-2.0

package cmdtree

// suggestDistanceMax is the largest edit distance still offered as a
// did-you-mean suggestion. Distance 3 catches common typos
// (transpositions, dropped characters, extra characters).
const suggestDistanceMax = 3

// suggestCommand returns the name of the closest matching subcommand to
// the unknown input, or "" if nothing is close enough.
func suggestCommand(unknown string, commands []*Command) string {
	bestName := ""
	bestDistance := suggestDistanceMax + 1

	for _, command := range commands {
		if distance := levenshtein(unknown, command.Name); distance < bestDistance {
			bestDistance = distance
			bestName = command.Name
		}
	}

	return bestName
}

// suggestFlag returns the closest declared flag name to the unknown one,
// formatted with the appropriate prefix (-- or -), or "" if no declared
// name is close enough. Both option and switch names are candidates; a
// mistyped switch is as likely to be a near-miss of an option as of
// another switch.
func suggestFlag(unknown string, options []Option, switches []Switch) string {
	var candidates []string
	for _, opt := range options {
		candidates = append(candidates, opt.Longhand)
		if opt.Shorthand != "" {
			candidates = append(candidates, opt.Shorthand)
		}
	}
	for _, sw := range switches {
		candidates = append(candidates, sw.Longhand)
		if sw.Shorthand != "" {
			candidates = append(candidates, sw.Shorthand)
		}
	}

	bestName := ""
	bestDistance := suggestDistanceMax + 1

	for _, candidate := range candidates {
		if distance := levenshtein(unknown, candidate); distance < bestDistance {
			bestDistance = distance
			bestName = candidate
		}
	}

	if bestName == "" {
		return ""
	}
	if len(bestName) == 1 {
		return "-" + bestName
	}
	return "--" + bestName
}

// levenshtein computes the Levenshtein edit distance between two
// strings: the minimum number of single-character insertions, deletions,
// or substitutions turning one into the other. Uses a single row of the
// distance matrix, O(min(m,n)) space.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		previousDiagonal := row[0]
		row[0] = j

		for i := 1; i <= len(a); i++ {
			substitution := previousDiagonal
			if a[i-1] != b[j-1] {
				substitution++
			}

			previousDiagonal = row[i]
			row[i] = min(row[i]+1, row[i-1]+1, substitution)
		}
	}

	return row[len(a)]
}
