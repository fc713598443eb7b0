package mandrill

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed endpoints.yaml
var catalogYAML []byte

// ParamType is the declared type of an endpoint parameter.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeInt     ParamType = "int"
	TypeBool    ParamType = "bool"
	TypeStrings ParamType = "strings"
	TypeStruct  ParamType = "struct"
	TypeStructs ParamType = "structs"
)

// ReturnShape is the documented shape of an endpoint's result.
type ReturnShape string

const (
	ReturnsStruct ReturnShape = "struct"
	ReturnsArray  ReturnShape = "array"
	ReturnsString ReturnShape = "string"
)

// Param describes one remote field of an endpoint.
type Param struct {
	Name     string    `yaml:"name"`
	Type     ParamType `yaml:"type"`
	Required bool      `yaml:"required"`
	Default  any       `yaml:"default"`
}

// HasDefault reports whether an absent optional value is sent as Default instead of null.
func (p Param) HasDefault() bool {
	return p.Default != nil
}

// Endpoint is a single remote operation.
type Endpoint struct {
	Path        string      `yaml:"path"`
	Description string      `yaml:"description"`
	Returns     ReturnShape `yaml:"returns"`
	Params      []Param     `yaml:"params"`
}

// Method returns the endpoint name within its category, e.g. "add-domain".
func (e Endpoint) Method() string {
	_, method, _ := strings.Cut(e.Path, "/")
	return method
}

// Category is a group of related endpoints.
type Category struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Endpoints   []Endpoint `yaml:"endpoints"`
}

type catalogFile struct {
	Categories []Category `yaml:"categories"`
}

var loadCatalog = sync.OnceValues(func() ([]Category, error) {
	return ParseCatalog(catalogYAML)
})

// Catalog returns the endpoint catalog the typed services were generated from.
func Catalog() ([]Category, error) {
	return loadCatalog()
}

// FindEndpoint looks up an endpoint by path, e.g. "exports/info".
func FindEndpoint(path string) (Endpoint, bool) {
	categories, err := Catalog()
	if err != nil {
		return Endpoint{}, false
	}
	for _, c := range categories {
		for _, e := range c.Endpoints {
			if e.Path == path {
				return e, true
			}
		}
	}
	return Endpoint{}, false
}

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(data []byte) ([]Category, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse endpoint catalog: %w", err)
	}

	seen := make(map[string]bool)
	for _, c := range file.Categories {
		if c.Name == "" {
			return nil, fmt.Errorf("endpoint catalog: category without a name")
		}
		for _, e := range c.Endpoints {
			if !strings.HasPrefix(e.Path, c.Name+"/") {
				return nil, fmt.Errorf("endpoint catalog: %s is not under category %s", e.Path, c.Name)
			}
			if seen[e.Path] {
				return nil, fmt.Errorf("endpoint catalog: duplicate endpoint %s", e.Path)
			}
			seen[e.Path] = true

			switch e.Returns {
			case ReturnsStruct, ReturnsArray, ReturnsString:
			default:
				return nil, fmt.Errorf("endpoint catalog: %s has unknown return shape %q", e.Path, e.Returns)
			}

			optional := false
			for _, p := range e.Params {
				switch p.Type {
				case TypeString, TypeInt, TypeBool, TypeStrings, TypeStruct, TypeStructs:
				default:
					return nil, fmt.Errorf("endpoint catalog: %s param %s has unknown type %q", e.Path, p.Name, p.Type)
				}
				if p.Required && optional {
					return nil, fmt.Errorf("endpoint catalog: %s required param %s follows an optional one", e.Path, p.Name)
				}
				optional = optional || !p.Required
			}
		}
	}

	return file.Categories, nil
}
