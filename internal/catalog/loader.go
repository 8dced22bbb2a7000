package catalog

import (
	"os"

	"github.com/KirkDiggler/rpg-arena/internal/domain/battle"
	arenaerr "github.com/KirkDiggler/rpg-arena/internal/errors"
	"gopkg.in/yaml.v3"
)

type document struct {
	Abilities []battle.Ability `yaml:"abilities"`
	Items     []Item           `yaml:"items"`
}

// Load reads a YAML catalog from path
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, arenaerr.Wrapf(err, "failed to read catalog %s", path)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML bytes
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, arenaerr.WrapWithCode(err, arenaerr.CodeValidation, "failed to parse catalog")
	}
	return New(doc.Abilities, doc.Items)
}
