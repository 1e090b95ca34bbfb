package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"
)

const createJobSchema = `{
	"type": "object",
	"properties": {
		"title": {"type": "string", "minLength": 1, "maxLength": 200},
		"description": {"type": "string", "minLength": 1, "maxLength": 5000}
	},
	"required": ["title", "description"]
}`

const updateJobSchema = `{
	"type": "object",
	"properties": {
		"description": {"type": "string", "minLength": 1, "maxLength": 5000}
	},
	"required": ["description"]
}`

// payloadSchema validates raw request bodies before they are decoded.
type payloadSchema struct {
	schema *jsonschema.Schema
}

func mustSchema(raw string) *payloadSchema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(raw), rs); err != nil {
		panic(fmt.Sprintf("invalid built-in schema: %v", err))
	}
	return &payloadSchema{schema: rs}
}

// Validate returns a readable message for the first problems found, or ""
// when body conforms.
func (p *payloadSchema) Validate(ctx context.Context, body []byte) (string, error) {
	if !json.Valid(body) {
		return "invalid JSON payload", nil
	}
	verrs, err := p.schema.ValidateBytes(ctx, body)
	if err != nil {
		return "", err
	}
	if len(verrs) == 0 {
		return "", nil
	}
	msgs := make([]string, 0, len(verrs))
	for _, ke := range verrs {
		path := strings.TrimPrefix(ke.PropertyPath, "/")
		if path == "" {
			msgs = append(msgs, ke.Message)
			continue
		}
		msgs = append(msgs, path+": "+ke.Message)
	}
	return strings.Join(msgs, "; "), nil
}
