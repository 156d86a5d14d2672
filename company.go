package carbonscope

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// CompanyInfo is the reporting company's profile. It feeds defaults into the
// advisory commands (offset recommendations, regulation lookup) and has no
// effect on ledger invariants.
type CompanyInfo struct {
	Name          string   `json:"name"`
	Industry      string   `json:"industry"`
	Location      string   `json:"location"`
	ContactPerson string   `json:"contact_person"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	ExportMarkets []string `json:"export_markets"`
}

// CompanyPath returns the path of the company profile file.
func (s *Store) CompanyPath() string { return filepath.Join(s.dir, companyFilename) }

// LoadCompany reads the company profile. An absent file yields a zero
// profile, not an error.
func (s *Store) LoadCompany() (CompanyInfo, error) {
	var info CompanyInfo
	data, err := os.ReadFile(s.CompanyPath())
	if os.IsNotExist(err) {
		return info, nil
	}
	if err != nil {
		return info, fmt.Errorf("cannot read company profile %q: %w", s.CompanyPath(), err)
	}
	if err := json.Unmarshal(data, &info); err != nil {
		return CompanyInfo{}, fmt.Errorf("cannot parse company profile %q: %w", s.CompanyPath(), err)
	}
	return info, nil
}

// SaveCompany writes the company profile.
func (s *Store) SaveCompany(info CompanyInfo) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create data directory %q: %w", s.dir, err)
	}
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal company profile: %w", err)
	}
	if err := os.WriteFile(s.CompanyPath(), data, 0644); err != nil {
		return fmt.Errorf("cannot write company profile %q: %w", s.CompanyPath(), err)
	}
	return nil
}
