package contracts

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const schemaBaseURL = "https://nadlan.local/schemas/"

// ErrInvalidJSON is returned when the body is not a JSON document.
var ErrInvalidJSON = errors.New("Invalid request body")

var listingForm = mustCompile("listing-form.json")

func mustCompile(name string) *jsonschema.Schema {
	data, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		panic(fmt.Sprintf("schema %s: %v", name, err))
	}
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaBaseURL+name, strings.NewReader(string(data))); err != nil {
		panic(fmt.Sprintf("schema %s: %v", name, err))
	}
	schema, err := compiler.Compile(schemaBaseURL + name)
	if err != nil {
		panic(fmt.Sprintf("schema %s: %v", name, err))
	}
	return schema
}

// FieldError points at one rejected value in the payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every schema violation of a payload.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "Invalid listing form"
	}
	first := e.Errors[0]
	if first.Field == "" {
		return first.Message
	}
	return first.Field + ": " + first.Message
}

// ValidateListingForm checks a publish payload against the listing-form schema.
func ValidateListingForm(body []byte) error {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return ErrInvalidJSON
	}
	err := listingForm.Validate(v)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	out := &ValidationError{}
	collectLeaves(ve, out)
	return out
}

func collectLeaves(ve *jsonschema.ValidationError, out *ValidationError) {
	if len(ve.Causes) == 0 {
		out.Errors = append(out.Errors, FieldError{
			Field:   strings.TrimPrefix(strings.ReplaceAll(ve.InstanceLocation, "/", "."), "."),
			Message: ve.Message,
		})
		return
	}
	for _, c := range ve.Causes {
		collectLeaves(c, out)
	}
}
