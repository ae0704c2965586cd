package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// OutputSchema describes the JSON object a prompt asks for. It is compiled
// on first use; share one value per schema.
type OutputSchema struct {
	// Name is sent to providers that label structured output.
	Name        string
	Description string
	Definition  map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

func (s *OutputSchema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		raw, err := json.Marshal(s.Definition)
		if err != nil {
			s.err = fmt.Errorf("marshal schema %s: %w", s.Name, err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			s.err = fmt.Errorf("parse schema %s: %w", s.Name, err)
			return
		}
		url := "schema://llm/" + s.Name + ".json"
		c := jsonschema.NewCompiler()
		if err := c.AddResource(url, doc); err != nil {
			s.err = fmt.Errorf("add schema %s: %w", s.Name, err)
			return
		}
		s.compiled, s.err = c.Compile(url)
	})
	return s.compiled, s.err
}

// Check reports a KindInvalidOutput error unless raw is JSON matching the schema.
func (s *OutputSchema) Check(raw json.RawMessage) error {
	sch, err := s.compile()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &Error{Kind: KindInvalidOutput, Content: raw, Err: fmt.Errorf("not JSON: %w", err)}
	}
	if err := sch.Validate(inst); err != nil {
		return &Error{Kind: KindInvalidOutput, Content: raw, Err: err}
	}
	return nil
}
