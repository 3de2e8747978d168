package entities

import (
	"strings"
	"time"

	domainerrors "crystallab/contexts/lab-reporting/report-intake/domain/errors"
)

type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
	SexOther  Sex = "Other"
)

var validSexes = map[Sex]bool{
	SexMale: true, SexFemale: true, SexOther: true,
}

// PatientInfo is the demographics block printed at the top of every report
// page. Free-text fields are stored upper-cased, matching the printed form.
type PatientInfo struct {
	LabNo        string
	PatientName  string
	ReferredBy   string
	CollectedAt  string
	Sex          Sex
	AgeYears     int
	RegisteredAt time.Time
	SampledAt    time.Time
	ReportedAt   time.Time
}

func NewPatientInfo(info PatientInfo) (PatientInfo, error) {
	normalized := PatientInfo{
		LabNo:        strings.TrimSpace(info.LabNo),
		PatientName:  strings.ToUpper(strings.TrimSpace(info.PatientName)),
		ReferredBy:   strings.ToUpper(strings.TrimSpace(info.ReferredBy)),
		CollectedAt:  strings.ToUpper(strings.TrimSpace(info.CollectedAt)),
		Sex:          info.Sex,
		AgeYears:     info.AgeYears,
		RegisteredAt: info.RegisteredAt,
		SampledAt:    info.SampledAt,
		ReportedAt:   info.ReportedAt,
	}
	if normalized.LabNo == "" || normalized.PatientName == "" {
		return PatientInfo{}, domainerrors.ErrInvalidPatient
	}
	if !validSexes[normalized.Sex] {
		return PatientInfo{}, domainerrors.ErrInvalidPatient
	}
	if normalized.AgeYears < 0 || normalized.AgeYears > 120 {
		return PatientInfo{}, domainerrors.ErrInvalidPatient
	}
	return normalized, nil
}

func (p PatientInfo) IsComplete() bool {
	return p.LabNo != "" && p.PatientName != "" && validSexes[p.Sex]
}

// Draft is the in-memory working state of one report: selected panels and
// the results entered so far. Drafts expire; an expired draft behaves as if
// it never existed.
type Draft struct {
	DraftID    string
	Patient    PatientInfo
	PanelCodes []string
	Results    map[string]map[string]string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ExpiresAt  time.Time
}

func (d Draft) IsExpired(now time.Time) bool {
	return !d.ExpiresAt.IsZero() && !d.ExpiresAt.After(now)
}

func (d Draft) PanelSelected(code string) bool {
	for _, selected := range d.PanelCodes {
		if selected == code {
			return true
		}
	}
	return false
}

// HasResults reports whether any selected panel carries at least one
// non-empty result value.
func (d Draft) HasResults() bool {
	for _, code := range d.PanelCodes {
		for _, value := range d.Results[code] {
			if strings.TrimSpace(value) != "" {
				return true
			}
		}
	}
	return false
}
