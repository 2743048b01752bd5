package tagconv

import (
	"strings"
)

// MystemConverter converts flat Mystem tags such as "S,жен,од=им,ед".
type MystemConverter struct {
	table *Table
}

var _ Converter[string] = (*MystemConverter)(nil)

func NewMystemConverter(t *Table) *MystemConverter {
	return &MystemConverter{table: t}
}

// DefaultMystemConverter uses the built-in table.
func DefaultMystemConverter() (*MystemConverter, error) {
	t, err := MystemTable()
	if err != nil {
		return nil, err
	}
	return NewMystemConverter(t), nil
}

func (c *MystemConverter) ConvertPOS(tag string) (string, error) {
	atoms := MystemGrammemes(tag)
	posAtom := ""
	if len(atoms) > 0 {
		posAtom = atoms[0]
	}

	pos, ok := c.table.pos(posAtom, atoms)
	if !ok {
		return "", &UnknownTagError{Vocabulary: Mystem, Tag: tag, Atom: posAtom}
	}

	return pos, nil
}

func (c *MystemConverter) ConvertFeatures(tag string) string {
	atoms := MystemGrammemes(tag)
	if len(atoms) == 0 {
		return ""
	}

	return c.table.features(atoms[0], atoms[1:])
}

// MystemGrammemes splits a Mystem tag into grammemes, POS first. The part
// after '=' may list alternatives, "(им,ед|вин,ед)"; only the first one is
// kept.
func MystemGrammemes(tag string) []string {
	lex, infl, _ := strings.Cut(tag, "=")

	infl = strings.TrimPrefix(infl, "(")
	infl, _, _ = strings.Cut(infl, "|")
	infl = strings.TrimSuffix(infl, ")")

	var atoms []string
	for _, part := range []string{lex, infl} {
		for _, a := range strings.Split(part, ",") {
			if a = strings.TrimSpace(a); a != "" {
				atoms = append(atoms, a)
			}
		}
	}

	return atoms
}
