package domain

// WordPair is one vocabulary entry: a source-language term and its translation.
// Pairs are compared by value.
type WordPair struct {
	Source string `csv:"source_text"`
	Target string `csv:"target_text"`
}

// IsZero reports whether the pair carries no text at all
func (p WordPair) IsZero() bool {
	return p.Source == "" && p.Target == ""
}
