package taxonomy

import (
	_ "embed"
	"encoding/json"
	"os"

	"github.com/jonathan/skillplan/internal/schemas"
	"github.com/jonathan/skillplan/internal/types"
	rootschemas "github.com/jonathan/skillplan/schemas"
)

//go:embed taxonomy.json
var defaultTaxonomy []byte

// definitionFile is the on-disk shape of a taxonomy definition.
type definitionFile struct {
	Skills []types.CanonicalSkill `json:"skills"`
}

// Load builds a registry from raw taxonomy JSON. The document is checked
// against the taxonomy schema before decoding, so malformed definitions fail
// with field-level errors instead of half-built registries.
func Load(data []byte) (*Registry, error) {
	if err := schemas.ValidateBytes(rootschemas.TaxonomySchema, data); err != nil {
		return nil, &LoadError{Message: "definition does not conform to taxonomy schema", Cause: err}
	}

	var def definitionFile
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, &LoadError{Message: "failed to decode definition JSON", Cause: err}
	}

	return NewRegistry(def.Skills)
}

// LoadFile builds a registry from a taxonomy definition file on disk.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read definition file", Cause: err}
	}
	reg, err := Load(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Path = path
			return nil, le
		}
		return nil, err
	}
	return reg, nil
}

// Default builds the registry shipped with the binary.
func Default() (*Registry, error) {
	return Load(defaultTaxonomy)
}
