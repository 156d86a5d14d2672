package carbonscope

import "strings"

// RequiredColumns are the columns every imported batch must carry, and the
// fields every manual entry must fill.
var RequiredColumns = []string{
	"date", "scope", "category", "activity", "quantity", "unit", "emission_factor",
}

// ValidateHeader checks a batch header for the presence of all required
// columns. It returns a SchemaError listing every missing column, so that a
// rejected file can be fixed in one pass.
func ValidateHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[strings.TrimSpace(col)] = true
	}
	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return SchemaError{Missing: missing}
	}
	return nil
}
