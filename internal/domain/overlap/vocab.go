package overlap

// OOV is the id assigned to sample keys that never occur in the reference.
// It is negative so the matcher can never treat two out-of-vocabulary
// tokens as equal.
const OOV = -1

// Vocab maps a normalized key to its integer id. Ids are not arbitrary:
// each key's id is the index of its first occurrence in the reference
// token sequence, so id order reflects first-appearance order.
type Vocab map[string]int

// BuildVocab assigns ids from the reference token sequence. Built once,
// never mutated afterwards.
func BuildVocab(refTokens []Token) Vocab {
	v := make(Vocab, len(refTokens))
	for i, tok := range refTokens {
		if _, ok := v[tok.Key]; !ok {
			v[tok.Key] = i
		}
	}
	return v
}

// Encode maps a token sequence to ids. Keys absent from the vocabulary
// resolve to OOV.
func (v Vocab) Encode(tokens []Token) []int {
	ids := make([]int, len(tokens))
	for i, tok := range tokens {
		if id, ok := v[tok.Key]; ok {
			ids[i] = id
		} else {
			ids[i] = OOV
		}
	}
	return ids
}
