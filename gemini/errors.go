package gemini

import (
	"context"
	"errors"

	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Classify names the kind of upstream failure for logs. It looks through
// wrapped errors for a gRPC status (Vertex) or an API error (Gemini API).
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyResponse):
		return "EmptyResponse"
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded.String()
	case errors.Is(err, context.Canceled):
		return codes.Canceled.String()
	}

	if st, ok := status.FromError(err); ok && st.Code() != codes.OK {
		return st.Code().String()
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiStatus(apiErr)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiStatus(*apiErrPtr)
	}

	return codes.Unknown.String()
}

func apiStatus(e genai.APIError) string {
	if e.Status != "" {
		return e.Status
	}
	return codes.Unknown.String()
}
