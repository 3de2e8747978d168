package entities

import (
	"regexp"
	"strconv"
	"strings"
)

type ResultFlag string

const (
	FlagNormal ResultFlag = "normal"
	FlagLow    ResultFlag = "low"
	FlagHigh   ResultFlag = "high"
	// FlagNone marks results that cannot be range-checked: non-numeric
	// values or normal texts that carry no parseable numeric range. These
	// are never printed in bold.
	FlagNone ResultFlag = "unflagged"
)

type NormalRange struct {
	Lower float64
	Upper float64
}

// rangePattern matches "<lower> - <upper>" with an optional word qualifier
// ("Male: 14 - 16"). Bounds may carry thousands separators ("10,000").
var rangePattern = regexp.MustCompile(`(?i)(?:([a-z]+)\s*:\s*)?(\d[\d,]*(?:\.\d+)?)\s*-\s*(\d[\d,]*(?:\.\d+)?)`)

type qualifiedRange struct {
	Qualifier string
	Range     NormalRange
}

// parseNormalRanges extracts every qualified range from a normal-values
// string, in text order. A plain "0.1 - 1.2 mg/dl" yields one entry with an
// empty qualifier; "Male: 14 - 16 g%, Female: 12 - 14 g%" yields two.
func parseNormalRanges(normalText string) []qualifiedRange {
	matches := rangePattern.FindAllStringSubmatch(normalText, -1)
	ranges := make([]qualifiedRange, 0, len(matches))
	for _, match := range matches {
		lower, errLower := parseBound(match[2])
		upper, errUpper := parseBound(match[3])
		if errLower != nil || errUpper != nil || upper < lower {
			continue
		}
		ranges = append(ranges, qualifiedRange{
			Qualifier: strings.ToLower(match[1]),
			Range:     NormalRange{Lower: lower, Upper: upper},
		})
	}
	return ranges
}

func parseBound(raw string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
}

// ParseNormalRange resolves the range to check a result against. When the
// text carries sex-qualified ranges and the patient sex matches a qualifier,
// that range wins; otherwise the first range in the text is used.
func ParseNormalRange(normalText, sex string) (NormalRange, bool) {
	ranges := parseNormalRanges(normalText)
	if len(ranges) == 0 {
		return NormalRange{}, false
	}
	wanted := strings.ToLower(strings.TrimSpace(sex))
	if wanted != "" {
		for _, candidate := range ranges {
			if candidate.Qualifier == wanted {
				return candidate.Range, true
			}
		}
	}
	return ranges[0].Range, true
}

// ClassifyResult decides whether a result prints in bold. A result bolds iff
// both the result and the normal range parse numerically and the result
// falls strictly outside the range. Zero is a valid result and a valid
// lower bound.
func ClassifyResult(result, normalText, sex string) ResultFlag {
	value, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(result), ",", ""), 64)
	if err != nil {
		return FlagNone
	}
	normal, ok := ParseNormalRange(normalText, sex)
	if !ok {
		return FlagNone
	}
	switch {
	case value < normal.Lower:
		return FlagLow
	case value > normal.Upper:
		return FlagHigh
	default:
		return FlagNormal
	}
}
