package entities

import "strings"

type PanelCode string

const (
	PanelCBC PanelCode = "cbc"
	PanelLFT PanelCode = "lft"
	PanelKFT PanelCode = "kft"
	PanelTFT PanelCode = "tft"
)

// TestDefinition is one row of a panel template. Section groups rows under a
// sub-heading in the printed report; an empty Section means the row belongs
// to the panel's unlabelled lead group.
type TestDefinition struct {
	Name       string
	Unit       string
	NormalText string
	Section    string
}

type Panel struct {
	Code           PanelCode
	Name           string
	Tests          []TestDefinition
	InstrumentNote string
}

func (p Panel) FindTest(name string) (TestDefinition, bool) {
	needle := strings.TrimSpace(name)
	for _, test := range p.Tests {
		if test.Name == needle {
			return test, true
		}
	}
	return TestDefinition{}, false
}

// Sections returns the distinct section labels in template order, starting
// with the unlabelled lead group when present.
func (p Panel) Sections() []string {
	seen := make(map[string]bool)
	sections := make([]string, 0, 4)
	for _, test := range p.Tests {
		if seen[test.Section] {
			continue
		}
		seen[test.Section] = true
		sections = append(sections, test.Section)
	}
	return sections
}

func NormalizeCode(raw string) PanelCode {
	return PanelCode(strings.ToLower(strings.TrimSpace(raw)))
}
