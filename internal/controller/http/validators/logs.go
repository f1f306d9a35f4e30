package validators

import "errors"

var (
	ErrMissingInput  = errors.New("input must be specified")
	ErrMissingOutput = errors.New("output must be specified")
)

// LogPayload is the ingestion request body. Pointer fields so that an
// absent key can be told apart from an empty string.
type LogPayload struct {
	Input  *string `json:"input"`
	Output *string `json:"output"`
}

func Validate(p *LogPayload) error {
	if p.Input == nil {
		return ErrMissingInput
	}
	if p.Output == nil {
		return ErrMissingOutput
	}
	return nil
}
