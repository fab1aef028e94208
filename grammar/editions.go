package grammar

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Edition selects which of the three language variants a Grammar
// implements. E2015 also covers 2018: their tokenisation is identical
//.
type Edition int

const (
	E2015 Edition = iota
	E2021
	E2024
)

func (e Edition) String() string {
	switch e {
	case E2015:
		return "2015"
	case E2021:
		return "2021"
	case E2024:
		return "2024"
	default:
		return fmt.Sprintf("Edition(%d)", int(e))
	}
}

// ParseEdition accepts "2015", "2018", "2021", "2024".
func ParseEdition(s string) (Edition, error) {
	switch s {
	case "2015", "2018":
		return E2015, nil
	case "2021":
		return E2021, nil
	case "2024":
		return E2024, nil
	default:
		return 0, fmt.Errorf("grammar: unknown edition %q", s)
	}
}

//go:embed editions.yaml
var editionsYAML []byte

// editionTable is the prioritised, per-edition list of top-level
// token-kind nonterminal names. It is loaded once from an
// embedded YAML document rather than written as Go slice literals, so
// adding an edition-specific rule never requires a Go change here.
type editionTable struct {
	Editions map[string][]string `yaml:"editions"`
}

var topLevelByEdition map[Edition][]string

func init() {
	var table editionTable
	if err := yaml.Unmarshal(editionsYAML, &table); err != nil {
		panic("grammar: malformed editions.yaml: " + err.Error())
	}
	topLevelByEdition = map[Edition][]string{
		E2015: mustList(table, "2015"),
		E2021: mustList(table, "2021"),
		E2024: mustList(table, "2024"),
	}
}

func mustList(table editionTable, key string) []string {
	names, ok := table.Editions[key]
	if !ok || len(names) == 0 {
		panic("grammar: editions.yaml missing entry for " + key)
	}
	return names
}

// TopLevelNonterminals returns the ordered list of token-kind nonterminal
// names to try, highest priority first, for ed.
func TopLevelNonterminals(ed Edition) []string {
	return topLevelByEdition[ed]
}
