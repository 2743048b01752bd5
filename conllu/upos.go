package conllu

// Universal Dependencies part of speech tags.
const (
	ADJ   = "ADJ"
	ADP   = "ADP"
	ADV   = "ADV"
	AUX   = "AUX"
	CCONJ = "CCONJ"
	DET   = "DET"
	INTJ  = "INTJ"
	NOUN  = "NOUN"
	NUM   = "NUM"
	PART  = "PART"
	PRON  = "PRON"
	PROPN = "PROPN"
	PUNCT = "PUNCT"
	SCONJ = "SCONJ"
	SYM   = "SYM"
	VERB  = "VERB"
	X     = "X"
)

var upos = map[string]bool{
	ADJ: true, ADP: true, ADV: true, AUX: true, CCONJ: true, DET: true,
	INTJ: true, NOUN: true, NUM: true, PART: true, PRON: true, PROPN: true,
	PUNCT: true, SCONJ: true, SYM: true, VERB: true, X: true,
}

// IsUPOS reports whether tag belongs to the UD part of speech vocabulary.
func IsUPOS(tag string) bool {
	return upos[tag]
}
