// Package prompts builds the instructions sent to the model for resume
// polishing and job match analysis.
package prompts

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/resumegenie/backend/models"
)

const polishTemplate = `You are an expert resume writer and career coach. Please analyze and improve the following resume content.

ORIGINAL RESUME TEXT:
%s

INSTRUCTIONS:
1. Extract and structure the resume into clear sections
2. Improve language to be more professional and impactful
3. Use strong action verbs and quantify achievements where possible
4. Fix grammar, spelling, and formatting issues
5. Ensure ATS (Applicant Tracking System) compatibility
6. Maintain all original information while enhancing presentation

Please return your response as a JSON object with the following structure:
{
  "contact_info": {
    "name": "Full Name",
    "email": "email@example.com",
    "phone": "phone number",
    "location": "City, State",
    "linkedin": "linkedin URL if available",
    "website": "website URL if available"
  },
  "summary": "Professional summary (2-3 sentences highlighting key strengths)",
  "experience": [
    {
      "title": "Job Title",
      "company": "Company Name",
      "duration": "Start Date - End Date",
      "location": "City, State",
      "achievements": [
        "Achievement 1 with quantified results",
        "Achievement 2 with impact metrics",
        "Achievement 3 demonstrating skills"
      ]
    }
  ],
  "education": [
    {
      "degree": "Degree Type",
      "school": "School Name",
      "graduation": "Graduation Date",
      "location": "City, State",
      "details": "GPA, honors, relevant coursework if applicable"
    }
  ],
  "skills": [
    "Skill 1", "Skill 2", "Skill 3"
  ],
  "certifications": [
    "Certification 1", "Certification 2"
  ],
  "improvements_made": [
    "List of key improvements made to the original resume"
  ]
}

Make sure the JSON is valid and properly formatted. Focus on making the resume more compelling while maintaining accuracy.
Return ONLY the JSON object.`

const analysisTemplate = `You are an expert recruiter and career advisor. Please analyze how well this resume matches the given job description.

RESUME CONTENT:
%s

JOB DESCRIPTION:
%s

ANALYSIS INSTRUCTIONS:
1. Calculate a match score (0-100) based on skills, experience, and requirements alignment
2. Identify missing keywords and skills from the job description
3. Provide specific suggestions to improve the match
4. Highlight strengths that align well with the job
5. Note any potential concerns or gaps

Please return your response as a JSON object with this structure:
{
  "match_score": 85,
  "overall_assessment": "Brief overall assessment of the candidate fit",
  "strengths": [
    "Strength 1 that aligns with job requirements",
    "Strength 2 demonstrating relevant experience"
  ],
  "missing_keywords": [
    "keyword1", "keyword2", "keyword3"
  ],
  "missing_skills": [
    "Important skill 1 not found in resume",
    "Technical requirement 2 not mentioned"
  ],
  "knowledge_gaps": [
    "Specific knowledge area 1 that candidate should develop",
    "Technical concept 2 that would strengthen the application",
    "Industry knowledge 3 that could be beneficial"
  ],
  "suggestions": [
    "Specific suggestion 1 to improve match",
    "Recommendation 2 for resume enhancement",
    "Action item 3 to address gaps"
  ],
  "concerns": [
    "Potential concern 1",
    "Gap 2 that might be questioned"
  ],
  "experience_match": {
    "score": 80,
    "notes": "Assessment of experience alignment"
  },
  "skills_match": {
    "score": 90,
    "notes": "Assessment of technical skills alignment"
  },
  "education_match": {
    "score": 75,
    "notes": "Assessment of educational background fit"
  }
}

Ensure the JSON is valid and provide actionable insights.
Return ONLY the JSON object.`

// BuildPolishPrompt embeds raw extracted resume text in the polishing instructions.
func BuildPolishPrompt(rawText string) string {
	return fmt.Sprintf(polishTemplate, rawText)
}

// BuildAnalysisPrompt embeds the flattened resume and the job description in
// the match analysis instructions.
func BuildAnalysisPrompt(resume models.ResumeContent, jobDescription string) string {
	return fmt.Sprintf(analysisTemplate, FormatResumeForAnalysis(resume), jobDescription)
}

// FormatResumeForAnalysis flattens a structured resume into plain text.
// Empty sections are left out.
func FormatResumeForAnalysis(resume models.ResumeContent) string {
	var lines []string

	if v := resume[models.FieldContactInfo]; present(v) {
		lines = append(lines, "Contact: "+formatValue(v))
	}

	if v := resume[models.FieldSummary]; present(v) {
		lines = append(lines, "Summary: "+formatValue(v))
	}

	for _, section := range []struct {
		field string
		label string
	}{
		{models.FieldExperience, "Experience:"},
		{models.FieldEducation, "Education:"},
	} {
		v := resume[section.field]
		if !present(v) {
			continue
		}
		lines = append(lines, section.label)
		for _, entry := range asList(v) {
			lines = append(lines, "- "+formatValue(entry))
		}
	}

	if v := resume[models.FieldSkills]; present(v) {
		lines = append(lines, "Skills: "+joinList(v))
	}

	if v := resume[models.FieldCertifications]; present(v) {
		lines = append(lines, "Certifications: "+joinList(v))
	}

	return strings.Join(lines, "\n")
}

// entryKeyOrder keeps the well-known fields first, in reading order.
var entryKeyOrder = []string{
	"name", "title", "degree", "company", "school", "email", "phone",
	"duration", "graduation", "location", "linkedin", "website",
	"details", "achievements",
}

func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case []any:
		return len(val) > 0
	case []string:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	case bool:
		return val
	case float64:
		return val != 0
	default:
		return true
	}
}

func asList(v any) []any {
	switch val := v.(type) {
	case []any:
		return val
	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = s
		}
		return out
	default:
		return []any{val}
	}
}

func joinList(v any) string {
	items := asList(v)
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if s := formatValue(item); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []any, []string:
		return joinList(val)
	case map[string]any:
		return formatMap(val)
	default:
		return fmt.Sprint(val)
	}
}

func formatMap(m map[string]any) string {
	seen := make(map[string]bool, len(m))
	keys := make([]string, 0, len(m))
	for _, k := range entryKeyOrder {
		if _, ok := m[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}

	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	keys = append(keys, rest...)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if s := formatValue(m[k]); s != "" {
			parts = append(parts, k+": "+s)
		}
	}
	return strings.Join(parts, "; ")
}
