package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ResumeContent is a structured resume as exchanged with the AI and clients.
// It is kept as a loose mapping so that whatever the model returned survives
// the round trip unchanged.
type ResumeContent map[string]any

// Top-level resume keys
const (
	FieldContactInfo      = "contact_info"
	FieldSummary          = "summary"
	FieldExperience       = "experience"
	FieldEducation        = "education"
	FieldSkills           = "skills"
	FieldCertifications   = "certifications"
	FieldImprovementsMade = "improvements_made"
	FieldRawImprovedText  = "raw_improved_text"
)

// RequiredResumeFields must be present on every normalized resume.
var RequiredResumeFields = []string{
	FieldContactInfo,
	FieldSummary,
	FieldExperience,
	FieldEducation,
	FieldSkills,
}

// ContactName returns contact_info.name, or "" when it is missing or not a string.
func (r ResumeContent) ContactName() string {
	contact, ok := r[FieldContactInfo].(map[string]any)
	if !ok {
		return ""
	}
	name, _ := contact["name"].(string)
	return strings.TrimSpace(name)
}

// ImprovementsMade returns the improvements_made list, tolerating a single string.
func (r ResumeContent) ImprovementsMade() []string {
	switch v := r[FieldImprovementsMade].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v != "" {
			return []string{v}
		}
	}
	return []string{}
}

// Typed decodes the mapping into the tolerant typed view.
func (r ResumeContent) Typed() (*Resume, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume content: %w", err)
	}

	var resume Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to decode resume content: %w", err)
	}
	return &resume, nil
}

// Resume is the typed view of ResumeContent used for rendering.
type Resume struct {
	ContactInfo    ContactInfo         `json:"contact_info"`
	Summary        FlexibleString      `json:"summary"`
	Experience     ExperienceList      `json:"experience"`
	Education      EducationList       `json:"education"`
	Skills         FlexibleStringSlice `json:"skills"`
	Certifications FlexibleStringSlice `json:"certifications"`
}

// ContactInfo holds the candidate's contact details
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// UnmarshalJSON accepts an object, or the empty list the parser inserts when
// contact_info is missing from the model output.
func (c *ContactInfo) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		*c = ContactInfo{}
		return nil
	}

	var raw struct {
		Name     FlexibleString `json:"name"`
		Email    FlexibleString `json:"email"`
		Phone    FlexibleString `json:"phone"`
		Location FlexibleString `json:"location"`
		LinkedIn FlexibleString `json:"linkedin"`
		Website  FlexibleString `json:"website"`
		GitHub   FlexibleString `json:"github"`
	}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}

	*c = ContactInfo{
		Name:     string(raw.Name),
		Email:    string(raw.Email),
		Phone:    string(raw.Phone),
		Location: string(raw.Location),
		LinkedIn: string(raw.LinkedIn),
		Website:  string(raw.Website),
		GitHub:   string(raw.GitHub),
	}
	return nil
}

// Experience represents one position held
type Experience struct {
	Title        FlexibleString      `json:"title"`
	Company      FlexibleString      `json:"company"`
	Duration     FlexibleString      `json:"duration"`
	Location     FlexibleString      `json:"location"`
	Achievements FlexibleStringSlice `json:"achievements"`
}

// Education represents educational background
type Education struct {
	Degree     FlexibleString `json:"degree"`
	School     FlexibleString `json:"school"`
	Graduation FlexibleString `json:"graduation"`
	Location   FlexibleString `json:"location"`
	Details    FlexibleString `json:"details"`
}

// UnmarshalJSON treats a bare string entry as the job title.
func (e *Experience) UnmarshalJSON(data []byte) error {
	var title string
	if err := json.Unmarshal(data, &title); err == nil {
		*e = Experience{Title: FlexibleString(title)}
		return nil
	}

	type plain Experience
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*e = Experience{}
		return nil
	}
	*e = Experience(p)
	return nil
}

// UnmarshalJSON treats a bare string entry as the degree.
func (e *Education) UnmarshalJSON(data []byte) error {
	var degree string
	if err := json.Unmarshal(data, &degree); err == nil {
		*e = Education{Degree: FlexibleString(degree)}
		return nil
	}

	type plain Education
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*e = Education{}
		return nil
	}
	*e = Education(p)
	return nil
}

// ExperienceList decodes to empty when the value is not a list
type ExperienceList []Experience

func (l *ExperienceList) UnmarshalJSON(data []byte) error {
	var items []Experience
	if err := json.Unmarshal(data, &items); err != nil {
		*l = ExperienceList{}
		return nil
	}
	*l = items
	return nil
}

// EducationList decodes to empty when the value is not a list
type EducationList []Education

func (l *EducationList) UnmarshalJSON(data []byte) error {
	var items []Education
	if err := json.Unmarshal(data, &items); err != nil {
		*l = EducationList{}
		return nil
	}
	*l = items
	return nil
}

// FlexibleString can unmarshal from a string, a number, a list or null
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*f = FlexibleString(str)
		return nil
	}

	var arr FlexibleStringSlice
	if err := json.Unmarshal(data, &arr); err == nil && len(arr) > 0 {
		*f = FlexibleString(strings.Join(arr, ", "))
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexibleString(num.String())
		return nil
	}

	*f = ""
	return nil
}

// FlexibleStringSlice can unmarshal from either a string or []string
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as []string first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	// Mixed lists keep their string and number items
	var mixed []any
	if err := json.Unmarshal(data, &mixed); err == nil {
		out := make([]string, 0, len(mixed))
		for _, item := range mixed {
			switch v := item.(type) {
			case string:
				out = append(out, v)
			case float64:
				out = append(out, fmt.Sprintf("%g", v))
			}
		}
		*f = out
		return nil
	}

	// Try to unmarshal as string
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "" {
			*f = []string{str}
		} else {
			*f = []string{}
		}
		return nil
	}

	// If both fail, return empty slice
	*f = []string{}
	return nil
}
