// Package text holds the pure string-analysis functions the analyzer
// builds on. Nothing here touches the network or the clock, and every
// function is deterministic for a given input.
package text

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	wordPattern       = regexp.MustCompile(`\b[a-z]{4,}\b`)
	sentencePattern   = regexp.MustCompile(`[.!?]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	specialPattern    = regexp.MustCompile(`[^\w\s.,!?-]`)
)

// stopWords are excluded from keyword extraction. The set is fixed;
// extraction results must be reproducible across runs.
var stopWords = map[string]struct{}{
	"that": {}, "this": {}, "with": {}, "from": {}, "have": {}, "been": {},
	"will": {}, "their": {}, "there": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "who": {}, "would": {}, "could": {}, "should": {},
}

// ExtractKeywords returns up to topN keywords ordered by descending
// frequency. Ties keep first-encountered order; the sort is stable so
// the output is reproducible.
func ExtractKeywords(input string, topN int) []string {
	if topN <= 0 {
		return []string{}
	}

	words := wordPattern.FindAllString(strings.ToLower(input), -1)

	counts := make(map[string]int)
	var order []string
	for _, w := range words {
		if _, stop := stopWords[w]; stop {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	return order
}

// ExtractKeyPoints picks up to maxPoints sentences, favoring early and
// reasonably long ones. Fragments of 20 characters or fewer are
// discarded before scoring.
func ExtractKeyPoints(input string, maxPoints int) []string {
	if maxPoints <= 0 {
		return []string{}
	}

	var sentences []string
	for _, s := range sentencePattern.Split(input, -1) {
		s = strings.TrimSpace(s)
		if len(s) > 20 {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return []string{}
	}

	// Only the first 2*maxPoints sentences compete; later ones score too
	// low on position to matter.
	candidates := sentences
	if len(candidates) > maxPoints*2 {
		candidates = candidates[:maxPoints*2]
	}

	type scored struct {
		sentence string
		score    float64
	}
	total := float64(len(sentences))
	points := make([]scored, len(candidates))
	for i, s := range candidates {
		positionScore := 1 - float64(i)/total
		lengthScore := float64(len(s)) / 100
		if lengthScore > 1 {
			lengthScore = 1
		}
		points[i] = scored{sentence: s, score: positionScore*0.6 + lengthScore*0.4}
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].score > points[j].score
	})

	if len(points) > maxPoints {
		points = points[:maxPoints]
	}
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.sentence
	}
	return out
}

// SummarizeSnippets joins snippets into one text, dropping
// case-insensitive duplicates while preserving first-seen order.
func SummarizeSnippets(snippets []string) string {
	if len(snippets) == 0 {
		return "No content available to summarize."
	}

	seen := make(map[string]struct{}, len(snippets))
	var unique []string
	for _, s := range snippets {
		normalized := strings.ToLower(strings.TrimSpace(s))
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		unique = append(unique, s)
	}
	return strings.Join(unique, " ")
}

// CleanText collapses whitespace runs and strips characters outside
// word characters, spaces and basic punctuation.
func CleanText(input string) string {
	input = whitespacePattern.ReplaceAllString(input, " ")
	input = specialPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(input)
}

// FirstSentence returns the text up to the first period, with the
// period restored. Used when building deterministic overviews.
func FirstSentence(input string) string {
	first, _, _ := strings.Cut(input, ".")
	if strings.TrimSpace(first) == "" {
		return ""
	}
	return fmt.Sprintf("%s.", first)
}
