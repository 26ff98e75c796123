// Package schemas embeds the JSON Schema files shipped with the repository.
package schemas

import _ "embed"

// TaxonomySchema is the JSON Schema that taxonomy definition files must
// conform to before the registry will load them.
//
//go:embed taxonomy.schema.json
var TaxonomySchema []byte
