package models

// PolishRequest represents the API request for resume polishing
// @Description Raw resume text to restructure and improve
type PolishRequest struct {
	Text string `json:"text" binding:"trimmed_min=50" example:"Jane Doe\nSoftware Engineer with 5 years experience building APIs in Go..."`
}

// PolishResponse represents the API response for resume polishing
// @Description Structured, improved resume
type PolishResponse struct {
	Status           string        `json:"status" example:"success"`
	OriginalText     string        `json:"original_text"`
	PolishedContent  ResumeContent `json:"polished_content" swaggertype:"object"`
	ImprovementsMade []string      `json:"improvements_made"`
}

// AnalyzeRequest represents the API request for job match analysis
// @Description Structured resume and the job posting to compare it with
type AnalyzeRequest struct {
	ResumeContent  ResumeContent `json:"resume_content" swaggertype:"object"`
	JobDescription string        `json:"job_description" binding:"trimmed_min=100" example:"We are looking for a backend engineer with Go, PostgreSQL and Kubernetes experience..."`
}

// AnalyzeResponse represents the API response for job match analysis
// @Description Match analysis combining AI and keyword overlap signals
type AnalyzeResponse struct {
	Status   string        `json:"status" example:"success"`
	Analysis MatchAnalysis `json:"analysis" swaggertype:"object"`
}

// GeneratePDFRequest represents the API request for PDF rendering
// @Description Structured resume to render
type GeneratePDFRequest struct {
	Content ResumeContent `json:"content" swaggertype:"object"`
}

// UploadResponse represents the API response for a resume upload
// @Description Text extracted from the uploaded PDF
type UploadResponse struct {
	Status         string `json:"status" example:"success"`
	Filename       string `json:"filename" example:"resume.pdf"`
	TextPreview    string `json:"text_preview"`
	FullText       string `json:"full_text"`
	CharacterCount int    `json:"character_count" example:"2431"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Detail string `json:"detail" example:"Resume text is too short. Please provide more content."`
	Code   int    `json:"code" example:"400"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Service   string `json:"service" example:"Resume Genie API"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
