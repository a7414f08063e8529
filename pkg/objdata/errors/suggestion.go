package errors

import (
	"fmt"
	"strings"
)

// SuggestKeyword suggests possible tag keywords when an unrecognized
// keyword is encountered inside a block. It uses Levenshtein distance
// to find similar keywords.
func SuggestKeyword(unknown string, validKeywords []string) string {
	if len(validKeywords) == 0 || unknown == "" {
		return ""
	}

	minDistance := 1000
	var bestMatch string

	for _, kw := range validKeywords {
		dist := levenshteinDistance(unknown, kw)
		if dist < minDistance {
			minDistance = dist
			bestMatch = kw
		}
	}

	// Only suggest if the distance is reasonable (< 4 edits)
	if minDistance < 4 {
		return fmt.Sprintf("Did you mean '%s'?", bestMatch)
	}

	if len(validKeywords) > 5 {
		return fmt.Sprintf("Valid tags include: %s, ...", strings.Join(validKeywords[:5], ", "))
	}
	return fmt.Sprintf("Valid tags: %s", strings.Join(validKeywords, ", "))
}

// levenshteinDistance computes the Levenshtein distance between two
// strings. Used for finding similar keywords for suggestions.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	len1 := len(s1)
	len2 := len(s2)

	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
	}

	for i := 0; i <= len1; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // Deletion
				matrix[i][j-1]+1,      // Insertion
				matrix[i-1][j-1]+cost, // Substitution
			)
		}
	}

	return matrix[len1][len2]
}
