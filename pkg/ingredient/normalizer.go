package ingredient

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed lexicon.yaml
var lexiconYAML []byte

// Normalizer translates French ingredient names to the English names the
// recipe search understands. It is read-only after construction.
type Normalizer struct {
	lexicon map[string]string
}

// NewNormalizer builds a normalizer from the embedded lexicon.
func NewNormalizer() (*Normalizer, error) {
	return ParseLexicon(lexiconYAML)
}

// MustNewNormalizer panics if the embedded lexicon is malformed.
func MustNewNormalizer() *Normalizer {
	n, err := NewNormalizer()
	if err != nil {
		panic(err)
	}
	return n
}

// ParseLexicon reads a YAML document of groups, each mapping French names to English names.
func ParseLexicon(data []byte) (*Normalizer, error) {
	var groups map[string]map[string]string
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, err
	}

	lexicon := make(map[string]string)
	for _, entries := range groups {
		for fr, en := range entries {
			lexicon[normalizeKey(fr)] = en
		}
	}
	return &Normalizer{lexicon: lexicon}, nil
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Translate returns the English name for name, or name unchanged when the
// lexicon has no entry for it.
func (n *Normalizer) Translate(name string) string {
	if en, ok := n.lexicon[normalizeKey(name)]; ok {
		return en
	}
	return name
}

func (n *Normalizer) TranslateAll(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = n.Translate(name)
	}
	return out
}

func (n *Normalizer) Len() int {
	return len(n.lexicon)
}
