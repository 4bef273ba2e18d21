package answer

import "strings"

// Stop words to filter out when tokenizing names for grounding checks
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true,
}

// tokenizeAndFilter splits text into words, lowercases, trims punctuation, and removes stop words
func tokenizeAndFilter(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		// Lowercase and trim punctuation
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}*"))

		// Skip stop words and empty strings
		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}

// ungroundedNames returns employee names mentioned in the answer that do not
// appear in the evidence context. A name counts as mentioned when any of its
// word tokens shows up in the answer, so "Ana" still flags a context-less
// mention of "Ana Petrov". Names backed by the context are never flagged.
func ungroundedNames(answerText, contextText string, knownNames []string) []string {
	answerWords := wordSet(answerText)
	contextWords := wordSet(contextText)

	var flagged []string
	for _, name := range knownNames {
		tokens := tokenizeAndFilter(name)
		if len(tokens) == 0 {
			continue
		}

		mentioned := false
		for _, token := range tokens {
			if answerWords[token] {
				mentioned = true
				break
			}
		}
		if !mentioned {
			continue
		}

		grounded := false
		for _, token := range tokens {
			if contextWords[token] {
				grounded = true
				break
			}
		}
		if !grounded {
			flagged = append(flagged, name)
		}
	}
	return flagged
}

func wordSet(text string) map[string]bool {
	words := tokenizeAndFilter(text)
	set := make(map[string]bool, len(words))
	for _, word := range words {
		set[word] = true
	}
	return set
}
