package address

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides maps dossier ids to hand-verified part-of tokens. Dossiers in
// the map skip the generic part-of grammar entirely.
type Overrides map[string][]string

// DefaultOverrides returns the historically verified exceptions of the
// register. These dossiers carry part-of lots whose titles the grammar
// cannot resolve (split lots spanning two numbers, lettered sub-lots).
func DefaultOverrides() Overrides {
	return Overrides{
		"HGB_1_074_075": {"8", "10"},
		"HGB_1_122_026": {"5", "6"},
		"HGB_1_136_012": {"3", "5"},
		"HGB_1_136_013": {"3", "5"},
		"HGB_1_159_054": {"31", "33"},
		"HGB_1_229_020": {"17", "21"},
		"HGB_1_154_027": {"21", "19"},
		"HGB_1_154_031": {"21", "23"},
		"HGB_1_154_028": {"21", "19"},
		"HGB_1_154_032": {"21", "23"},
		"HGB_1_154_029": {"21", "19"},
		"HGB_1_147_026": {"25", "23"},
		"HGB_1_091_056": {"29", "31"},
		"HGB_1_024_096": {"10 A"},
		"HGB_1_024_097": {"10 B"},
		"HGB_1_024_099": {"10 D"},
		"HGB_1_091_020": {"61"},
	}
}

// LoadOverrides reads an override map from a YAML file. The file replaces
// the built-in defaults wholesale:
//
//	HGB_1_024_096: ["10 A"]
//	HGB_1_074_075: ["8", "10"]
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}
	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("parse overrides %s: %w", path, err)
	}
	return ov, nil
}
