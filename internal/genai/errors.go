package genai

import (
	"errors"
	"strings"
)

var (
	// ErrNoImage indicates the model answered without an image payload.
	ErrNoImage = errors.New("no image data in model response")
	// ErrTimeout indicates a generation attempt hit its deadline.
	ErrTimeout = errors.New("image generation timed out")
	// ErrMissingAPIKey indicates the client was built without credentials.
	ErrMissingAPIKey = errors.New("api key is not configured")
)

// capacityMarkers are the substrings that identify quota or permission
// rejections in an upstream error. These are the failures worth retrying
// on the fallback model; everything else fails the same way there.
var capacityMarkers = []string{
	"429",
	"RESOURCE_EXHAUSTED",
	"403",
	"PERMISSION_DENIED",
}

// IsCapacityError reports whether err looks like a quota or permission
// rejection from the upstream API.
func IsCapacityError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range capacityMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// IsCredentialError reports whether err indicates absent credentials.
func IsCredentialError(err error) bool {
	return errors.Is(err, ErrMissingAPIKey)
}
