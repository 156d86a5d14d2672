package carbonscope

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/greenledger/carbonscope/date"
	"github.com/shopspring/decimal"
)

// Scope is a greenhouse-gas accounting scope as defined by the GHG Protocol.
type Scope string

const (
	Scope1 Scope = "Scope 1"
	Scope2 Scope = "Scope 2"
	Scope3 Scope = "Scope 3"
)

// Scopes lists all scopes in their conventional order.
var Scopes = []Scope{Scope1, Scope2, Scope3}

// ParseScope parses a string into a Scope. It tolerates surrounding spaces
// and short forms like "1" or "scope 2".
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scope 1", "1":
		return Scope1, nil
	case "scope 2", "2":
		return Scope2, nil
	case "scope 3", "3":
		return Scope3, nil
	default:
		return "", fmt.Errorf("unknown scope: %q", s)
	}
}

// DataQuality indicates how an entry's figures were obtained.
type DataQuality string

const (
	QualityLow    DataQuality = "Low"    // estimated or proxy data
	QualityMedium DataQuality = "Medium" // calculated from bills or invoices
	QualityHigh   DataQuality = "High"   // directly measured or metered
)

// VerificationStatus indicates the level of audit applied to an entry.
type VerificationStatus string

const (
	Unverified         VerificationStatus = "Unverified"
	InternallyVerified VerificationStatus = "Internally Verified"
	ThirdPartyVerified VerificationStatus = "Third-Party Verified"
)

// KgCO2e is an emissions value in kilograms of CO2 equivalent.
//
// Decoding is deliberately forgiving: a non-numeric or missing value coerces
// to zero rather than failing the whole ledger, so that a hand-edited file
// never becomes unreadable. Encoding is always a plain JSON number.
type KgCO2e float64

// UnmarshalJSON accepts a JSON number, a numeric string, or anything else
// (coerced to zero).
func (k *KgCO2e) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case float64:
		*k = KgCO2e(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			*k = 0
			return nil
		}
		*k = KgCO2e(f)
	default:
		*k = 0
	}
	return nil
}

var _ json.Unmarshaler = (*KgCO2e)(nil)

// ComputeEmissions derives the emissions from an activity quantity and an
// emission factor (kgCO2e per unit). The product is computed with decimal
// arithmetic so that entries like 1000 kWh at 0.82 come out exactly 820.
func ComputeEmissions(quantity, factor float64) KgCO2e {
	product := decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(factor))
	return KgCO2e(product.InexactFloat64())
}

// Entry is one recorded emission activity.
//
// The JSON field names are the on-disk contract and must not change.
type Entry struct {
	Date               date.Date          `json:"date"`
	BusinessUnit       string             `json:"business_unit"`
	Project            string             `json:"project"`
	Scope              Scope              `json:"scope"`
	Category           string             `json:"category"`
	Activity           string             `json:"activity"`
	Country            string             `json:"country"`
	Facility           string             `json:"facility"`
	ResponsiblePerson  string             `json:"responsible_person"`
	Quantity           float64            `json:"quantity"`
	Unit               string             `json:"unit"`
	EmissionFactor     float64            `json:"emission_factor"`
	Emissions          KgCO2e             `json:"emissions_kgCO2e"`
	DataQuality        DataQuality        `json:"data_quality"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	Notes              string             `json:"notes"`
}

// Validate checks the required fields of a manually entered record. It does
// not check category/activity membership in the scope hierarchy; that is the
// entry form's concern, not the ledger's.
func (e Entry) Validate() error {
	var missing []string
	if e.Date.IsZero() {
		missing = append(missing, "date")
	}
	if e.Scope == "" {
		missing = append(missing, "scope")
	}
	if e.Category == "" {
		missing = append(missing, "category")
	}
	if e.Activity == "" {
		missing = append(missing, "activity")
	}
	if e.Unit == "" {
		missing = append(missing, "unit")
	}
	if len(missing) > 0 {
		return SchemaError{Missing: missing}
	}
	if e.Quantity < 0 {
		return ValueError{Field: "quantity", Value: strconv.FormatFloat(e.Quantity, 'f', -1, 64), Err: errNegative}
	}
	if e.EmissionFactor < 0 {
		return ValueError{Field: "emission_factor", Value: strconv.FormatFloat(e.EmissionFactor, 'f', -1, 64), Err: errNegative}
	}
	return nil
}

// Derive returns a copy of the entry with the emissions recomputed from its
// own quantity and factor. Manual entry always derives, even when the caller
// supplied a value, to guarantee internal consistency.
func (e Entry) Derive() Entry {
	e.Emissions = ComputeEmissions(e.Quantity, e.EmissionFactor)
	return e
}
