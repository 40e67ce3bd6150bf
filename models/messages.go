package models

// Input limits
const (
	MinResumeTextLength     = 50
	MinJobDescriptionLength = 100
	MinExtractedTextLength  = 50
	TextPreviewLength       = 500
)

// Client-facing validation messages
const (
	MsgOnlyPDF                = "Only PDF files are allowed"
	MsgInvalidPDF             = "Invalid PDF file or corrupted file"
	MsgInsufficientPDFText    = "Unable to extract sufficient text from PDF. Please ensure the PDF contains readable text."
	MsgResumeTextTooShort     = "Resume text is too short. Please provide more content."
	MsgResumeContentRequired  = "Resume content is required"
	MsgJobDescriptionTooShort = "Job description is too short. Please provide a detailed job posting."
	MsgInvalidResumeContent   = "Invalid resume content. Please ensure all required fields are provided."
	MsgEndpointNotFound       = "Endpoint not found"
)

// PolishResult is the outcome of the polish flow
type PolishResult struct {
	PolishedContent  ResumeContent `json:"polished_content" swaggertype:"object"`
	ImprovementsMade []string      `json:"improvements_made"`
	Degraded         bool          `json:"degraded"`
}
