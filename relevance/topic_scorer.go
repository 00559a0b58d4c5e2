// Package relevance scores how strongly a piece of text relates to the
// research topic. Scores annotate sources in the final report; they
// never filter or reorder results.
package relevance

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// TopicScorer matches stemmed topic words against text tokens by stem
// prefix, so "diagnostics" still counts toward "diagnostic tools".
type TopicScorer struct{}

func NewTopicScorer() *TopicScorer {
	return &TopicScorer{}
}

// Score returns the fraction of topic words found in the text, in
// [0, 1]. Empty topic or text scores 0.
func (s *TopicScorer) Score(topic, content string) float64 {
	topicWords := strings.Fields(strings.ToLower(topic))
	if len(topicWords) == 0 || content == "" {
		return 0
	}

	stems := make([]string, 0, len(topicWords))
	for _, w := range topicWords {
		stems = append(stems, stemWord(w))
	}

	tokens := strings.FieldsFunc(strings.ToLower(content), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	matched := 0
	for _, stem := range stems {
		prefix := stem
		// Match on at least the first 4 characters of the stem, or the
		// whole stem when it is shorter.
		if len(prefix) > 4 {
			prefix = prefix[:4]
		}
		for _, tok := range tokens {
			if strings.HasPrefix(stemWord(tok), prefix) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(stems))
}

func stemWord(word string) string {
	stem, err := snowball.Stem(word, "english", true)
	if err != nil {
		return word
	}
	return stem
}
