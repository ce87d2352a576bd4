package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "todos.schema.json"

// todosSchema describes the stored document: an ordered array of items.
const todosSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "title": {"type": "string", "minLength": 1},
      "completed": {"type": "boolean"}
    }
  }
}`

var schema = jsonschema.MustCompileString(schemaURL, todosSchema)

// validate checks a decoded JSON document against todosSchema and flattens
// nested validation causes into one error.
func validate(doc any) error {
	err := schema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate: %w", err)
	}

	var msgs []string
	collectCauses(ve, &msgs)
	return fmt.Errorf("invalid stored todos: %s", strings.Join(msgs, "; "))
}

func collectCauses(ve *jsonschema.ValidationError, msgs *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*msgs = append(*msgs, fmt.Sprintf("%s: %s", loc, ve.Message))
		return
	}
	for _, cause := range ve.Causes {
		collectCauses(cause, msgs)
	}
}
