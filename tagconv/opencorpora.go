package tagconv

import (
	"strings"
)

// OpenCorporaTag is a structured OpenCorpora tag, as produced by pymorphy.
// Grammemes outside the named categories are kept in Other.
type OpenCorporaTag struct {
	POS          string
	Animacy      string
	Aspect       string
	Case         string
	Gender       string
	Involvement  string
	Mood         string
	Number       string
	Person       string
	Tense        string
	Transitivity string
	Voice        string
	Other        []string

	raw string
}

var openCorporaCategories = []struct {
	grammemes []string
	field     func(*OpenCorporaTag) *string
}{
	{[]string{"NOUN", "ADJF", "ADJS", "COMP", "VERB", "INFN", "PRTF", "PRTS", "GRND", "NUMR", "ADVB", "NPRO", "PRED", "PREP", "CONJ", "PRCL", "INTJ"},
		func(t *OpenCorporaTag) *string { return &t.POS }},
	{[]string{"anim", "inan"}, func(t *OpenCorporaTag) *string { return &t.Animacy }},
	{[]string{"perf", "impf"}, func(t *OpenCorporaTag) *string { return &t.Aspect }},
	{[]string{"nomn", "gent", "datv", "accs", "ablt", "loct", "voct", "gen1", "gen2", "acc2", "loc1", "loc2"},
		func(t *OpenCorporaTag) *string { return &t.Case }},
	{[]string{"masc", "femn", "neut", "ms-f"}, func(t *OpenCorporaTag) *string { return &t.Gender }},
	{[]string{"incl", "excl"}, func(t *OpenCorporaTag) *string { return &t.Involvement }},
	{[]string{"indc", "impr"}, func(t *OpenCorporaTag) *string { return &t.Mood }},
	{[]string{"sing", "plur"}, func(t *OpenCorporaTag) *string { return &t.Number }},
	{[]string{"1per", "2per", "3per"}, func(t *OpenCorporaTag) *string { return &t.Person }},
	{[]string{"pres", "past", "futr"}, func(t *OpenCorporaTag) *string { return &t.Tense }},
	{[]string{"tran", "intr"}, func(t *OpenCorporaTag) *string { return &t.Transitivity }},
	{[]string{"actv", "pssv"}, func(t *OpenCorporaTag) *string { return &t.Voice }},
}

var openCorporaCategory = func() map[string]func(*OpenCorporaTag) *string {
	m := map[string]func(*OpenCorporaTag) *string{}
	for _, c := range openCorporaCategories {
		for _, g := range c.grammemes {
			m[g] = c.field
		}
	}
	return m
}()

// ParseOpenCorporaTag parses a tag such as "NOUN,anim,masc sing,nomn".
// Tags without a part of speech grammeme ("PNCT", "NUMB,intg", "LATN")
// use their first grammeme as POS.
func ParseOpenCorporaTag(s string) OpenCorporaTag {
	t := OpenCorporaTag{raw: s}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})

	for _, g := range fields {
		field, ok := openCorporaCategory[g]
		if !ok {
			t.Other = append(t.Other, g)
			continue
		}

		if p := field(&t); *p == "" {
			*p = g
		}
	}

	if t.POS == "" && len(t.Other) > 0 {
		t.POS, t.Other = t.Other[0], t.Other[1:]
	}

	return t
}

// Grammemes returns all grammemes of the tag, POS first.
func (t OpenCorporaTag) Grammemes() []string {
	all := []string{t.POS, t.Animacy, t.Aspect, t.Case, t.Gender, t.Involvement,
		t.Mood, t.Number, t.Person, t.Tense, t.Transitivity, t.Voice}
	all = append(all, t.Other...)

	gs := make([]string, 0, len(all))
	for _, g := range all {
		if g != "" {
			gs = append(gs, g)
		}
	}

	return gs
}

// String returns the tag as it was parsed, or the grammemes joined with
// commas for tags built by hand.
func (t OpenCorporaTag) String() string {
	if t.raw != "" {
		return t.raw
	}
	return strings.Join(t.Grammemes(), ",")
}

// OpenCorporaConverter converts structured OpenCorpora tags.
type OpenCorporaConverter struct {
	table *Table
}

var _ Converter[OpenCorporaTag] = (*OpenCorporaConverter)(nil)

func NewOpenCorporaConverter(t *Table) *OpenCorporaConverter {
	return &OpenCorporaConverter{table: t}
}

// DefaultOpenCorporaConverter uses the built-in table.
func DefaultOpenCorporaConverter() (*OpenCorporaConverter, error) {
	t, err := OpenCorporaTable()
	if err != nil {
		return nil, err
	}
	return NewOpenCorporaConverter(t), nil
}

func (c *OpenCorporaConverter) ConvertPOS(tag OpenCorporaTag) (string, error) {
	pos, ok := c.table.pos(tag.POS, tag.Other)
	if !ok {
		return "", &UnknownTagError{Vocabulary: OpenCorpora, Tag: tag.String(), Atom: tag.POS}
	}

	return pos, nil
}

func (c *OpenCorporaConverter) ConvertFeatures(tag OpenCorporaTag) string {
	gs := tag.Grammemes()
	if tag.POS != "" && len(gs) > 0 {
		gs = gs[1:]
	}

	return c.table.features(tag.POS, gs)
}
