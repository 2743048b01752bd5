package tagconv

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/revelaction/conllpipe/conllu"
	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tableFiles embed.FS

const (
	mystemTableFile      = "mystem.yaml"
	openCorporaTableFile = "opencorpora.yaml"
)

// Table maps the grammemes of one analyzer vocabulary to UD.
type Table struct {
	// POS maps a POS grammeme to a UD part of speech.
	POS map[string]string `yaml:"pos"`

	// PropN lists grammemes that turn a NOUN into a PROPN.
	PropN []string `yaml:"propn"`

	// Features maps a UD feature key to grammeme → UD value.
	Features map[string]map[string]string `yaml:"features"`

	// Implied maps a POS grammeme to features it carries by itself.
	Implied map[string]map[string]string `yaml:"implied"`

	atoms map[string]feature
	propn map[string]bool
}

type feature struct {
	key   string
	value string
}

// ParseTable decodes a YAML conversion table and checks that every POS
// target belongs to the UD vocabulary.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tag table: %w", err)
	}

	if len(t.POS) == 0 {
		return nil, fmt.Errorf("tag table has no pos section")
	}

	for atom, pos := range t.POS {
		if !conllu.IsUPOS(pos) {
			return nil, fmt.Errorf("tag table: %q maps to %q, not a UD part of speech", atom, pos)
		}
	}

	t.atoms = make(map[string]feature)
	for key, values := range t.Features {
		for atom, value := range values {
			if prev, ok := t.atoms[atom]; ok {
				return nil, fmt.Errorf("tag table: grammeme %q maps to both %s and %s", atom, prev.key, key)
			}
			t.atoms[atom] = feature{key: key, value: value}
		}
	}

	t.propn = make(map[string]bool, len(t.PropN))
	for _, atom := range t.PropN {
		t.propn[atom] = true
	}

	return &t, nil
}

// LoadTable reads a conversion table from a YAML file.
func LoadTable(filepath string) (*Table, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tag table: %w", err)
	}

	return ParseTable(data)
}

// MystemTable returns the built-in Mystem table.
func MystemTable() (*Table, error) {
	return embeddedTable(mystemTableFile)
}

// OpenCorporaTable returns the built-in OpenCorpora table.
func OpenCorporaTable() (*Table, error) {
	return embeddedTable(openCorporaTableFile)
}

func embeddedTable(name string) (*Table, error) {
	data, err := tableFiles.ReadFile(path.Join("tables", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded table %s: %w", name, err)
	}

	return ParseTable(data)
}

// pos converts a POS grammeme. Nouns with a proper-name grammeme in
// atoms become PROPN.
func (t *Table) pos(posAtom string, atoms []string) (string, bool) {
	pos, ok := t.POS[posAtom]
	if !ok {
		return "", false
	}

	if pos == conllu.NOUN {
		for _, a := range atoms {
			if t.propn[a] {
				return conllu.PROPN, true
			}
		}
	}

	return pos, true
}

// features builds the UD feature string. Keys are sorted, the first value
// seen for a key wins, unknown grammemes are dropped.
func (t *Table) features(posAtom string, atoms []string) string {
	feats := map[string]string{}

	for key, value := range t.Implied[posAtom] {
		feats[key] = value
	}

	for _, a := range atoms {
		f, ok := t.atoms[a]
		if !ok {
			continue
		}
		if _, seen := feats[f.key]; seen {
			continue
		}
		feats[f.key] = f.value
	}

	if len(feats) == 0 {
		return ""
	}

	keys := make([]string, 0, len(feats))
	for k := range feats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + feats[k]
	}

	return strings.Join(pairs, "|")
}
