package concept

import (
	"context"

	"github.com/invopop/jsonschema"
)

// TextRequest is one structured text-generation call.
type TextRequest struct {
	Model             string
	Prompt            string
	SystemInstruction string
	ResponseSchema    *jsonschema.Schema
}

// TextCapability is the text-generation model the generator talks to.
type TextCapability interface {
	GenerateText(ctx context.Context, req TextRequest) (string, error)
}
