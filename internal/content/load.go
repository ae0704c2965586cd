package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://assessly/definition.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func definitionSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("parse definition schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Load reads and validates a definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse validates raw JSON against the definition schema, decodes it, and
// checks the constraints a schema cannot express.
func Parse(data []byte) (*Definition, error) {
	sch, err := definitionSchema()
	if err != nil {
		return nil, err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}
	if err := check(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

func check(def *Definition) error {
	var errs []error
	seen := make(map[string]int)
	for i, s := range def.Steps {
		if s.Name != "" {
			if j, dup := seen[s.Name]; dup {
				errs = append(errs, fmt.Errorf("step %d: name %q already used by step %d", i, s.Name, j))
			}
			seen[s.Name] = i
		}
		switch s.Kind {
		case KindMCQ, KindMRQ:
			if len(s.Choices) == 0 {
				errs = append(errs, fmt.Errorf("step %d: no choices", i))
			}
			for _, v := range s.Correct {
				if _, ok := s.Choice(v); !ok {
					errs = append(errs, fmt.Errorf("step %d: correct value %q is not a choice", i, v))
				}
			}
			if s.Kind == KindMCQ && len(s.Correct) != 1 {
				errs = append(errs, fmt.Errorf("step %d: single choice needs exactly one correct value", i))
			}
		}
	}
	if last := def.Steps[def.LastIndex()]; !last.Displayable() {
		errs = append(errs, errors.New("the last step must be displayable"))
	}
	if def.Questions() == 0 {
		errs = append(errs, errors.New("no graded steps"))
	}
	return errors.Join(errs...)
}

// Catalog holds the definitions served by one grader, keyed by ID.
type Catalog struct {
	defs map[string]*Definition
}

// NewCatalog builds a catalog from already loaded definitions.
func NewCatalog(defs ...*Definition) (*Catalog, error) {
	c := &Catalog{defs: make(map[string]*Definition, len(defs))}
	for _, d := range defs {
		if _, dup := c.defs[d.ID]; dup {
			return nil, fmt.Errorf("duplicate assessment id %q", d.ID)
		}
		c.defs[d.ID] = d
	}
	return c, nil
}

// LoadDir loads every *.json definition in dir.
func LoadDir(dir string) (*Catalog, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list definitions: %w", err)
	}
	defs := make([]*Definition, 0, len(paths))
	for _, p := range paths {
		def, err := Load(p)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return NewCatalog(defs...)
}

// Get returns the definition with the given ID.
func (c *Catalog) Get(id string) (*Definition, bool) {
	d, ok := c.defs[id]
	return d, ok
}

// List returns all definitions ordered by ID.
func (c *Catalog) List() []*Definition {
	out := make([]*Definition, 0, len(c.defs))
	for _, d := range c.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(out[i].ID, out[j].ID) < 0
	})
	return out
}
