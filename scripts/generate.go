//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	catalogFile = "endpoints.yaml"
	outputFile  = "endpoints_gen.go"
)

var initialisms = map[string]string{
	"api":  "API",
	"dns":  "DNS",
	"id":   "ID",
	"ip":   "IP",
	"ips":  "IPs",
	"url":  "URL",
	"urls": "URLs",
}

type param struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Required bool   `yaml:"required"`
	Default  any    `yaml:"default"`
}

type endpoint struct {
	Path        string  `yaml:"path"`
	Description string  `yaml:"description"`
	Returns     string  `yaml:"returns"`
	Params      []param `yaml:"params"`
}

type category struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Endpoints   []endpoint `yaml:"endpoints"`
}

type catalog struct {
	Categories []category `yaml:"categories"`
}

// Run from the mandrill package directory (go generate does this).
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	data, err := os.ReadFile(catalogFile)
	if err != nil {
		return fmt.Errorf("reading catalog: %w", err)
	}

	var cat catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return fmt.Errorf("parsing catalog: %w", err)
	}

	src, err := render(cat)
	if err != nil {
		return err
	}

	formatted, err := format.Source(src)
	if err != nil {
		return fmt.Errorf("formatting output: %w\n%s", err, src)
	}

	if err := os.WriteFile(filepath.Clean(outputFile), formatted, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}

	fmt.Printf("Generated %s (%d categories)\n", outputFile, len(cat.Categories))
	return nil
}

func render(cat catalog) ([]byte, error) {
	var b bytes.Buffer

	b.WriteString("// Code generated by scripts/generate.go from endpoints.yaml. DO NOT EDIT.\n\n")
	b.WriteString("package mandrill\n\n")
	b.WriteString("import \"context\"\n\n")

	b.WriteString("// services holds the endpoint groups exposed on Client.\n")
	b.WriteString("type services struct {\n")
	for _, c := range cat.Categories {
		fmt.Fprintf(&b, "%s *%sService\n", goName(c.Name), goName(c.Name))
	}
	b.WriteString("}\n\n")

	b.WriteString("func (c *Client) initServices() {\n")
	for _, c := range cat.Categories {
		fmt.Fprintf(&b, "c.%s = &%sService{client: c}\n", goName(c.Name), goName(c.Name))
	}
	b.WriteString("}\n")

	for _, c := range cat.Categories {
		if err := renderCategory(&b, c); err != nil {
			return nil, err
		}
	}

	return b.Bytes(), nil
}

func renderCategory(b *bytes.Buffer, c category) error {
	svc := goName(c.Name) + "Service"

	fmt.Fprintf(b, "\n// %s groups the %s endpoints.\n", svc, c.Name)
	fmt.Fprintf(b, "// %s\n", c.Description)
	fmt.Fprintf(b, "type %s struct {\nclient *Client\n}\n", svc)

	for _, e := range c.Endpoints {
		if !strings.HasPrefix(e.Path, c.Name+"/") {
			return fmt.Errorf("endpoint %s is not under category %s", e.Path, c.Name)
		}
		if err := renderEndpoint(b, svc, c.Name, e); err != nil {
			return fmt.Errorf("endpoint %s: %w", e.Path, err)
		}
	}
	return nil
}

func renderEndpoint(b *bytes.Buffer, svc, categoryName string, e endpoint) error {
	method := goName(strings.TrimPrefix(e.Path, categoryName+"/"))
	optsType := goName(categoryName) + method + "Options"

	var required, optional []param
	for _, p := range e.Params {
		if p.Required {
			if len(optional) > 0 {
				return fmt.Errorf("required param %s follows an optional one", p.Name)
			}
			required = append(required, p)
		} else {
			optional = append(optional, p)
		}
	}

	if len(optional) > 0 {
		fmt.Fprintf(b, "\n// %s holds the optional parameters of %s.%s.\n", optsType, svc, method)
		fmt.Fprintf(b, "type %s struct {\n", optsType)
		for _, p := range optional {
			typ, err := goType(p.Type, false)
			if err != nil {
				return err
			}
			fmt.Fprintf(b, "%s %s\n", goName(p.Name), typ)
		}
		b.WriteString("}\n")
	}

	resultType, caller, err := returnType(e.Returns)
	if err != nil {
		return err
	}

	args := []string{"ctx context.Context"}
	for _, p := range required {
		typ, err := goType(p.Type, true)
		if err != nil {
			return err
		}
		args = append(args, fmt.Sprintf("%s %s", localName(p.Name), typ))
	}
	if len(optional) > 0 {
		args = append(args, "opts *"+optsType)
	}

	fmt.Fprintf(b, "\n// %s calls %s.\n", method, e.Path)
	fmt.Fprintf(b, "// %s\n", e.Description)
	fmt.Fprintf(b, "func (s *%s) %s(%s) (%s, error) {\n", svc, method, strings.Join(args, ", "), resultType)

	if len(e.Params) == 0 {
		fmt.Fprintf(b, "return s.client.%s(ctx, %q, Params{})\n}\n", caller, e.Path)
		return nil
	}

	if len(optional) > 0 {
		fmt.Fprintf(b, "if opts == nil {\nopts = &%s{}\n}\n", optsType)
	}

	b.WriteString("params := Params{\n")
	for _, p := range required {
		fmt.Fprintf(b, "%q: %s,\n", p.Name, localName(p.Name))
	}
	for _, p := range optional {
		value, err := optionalValue(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "%q: %s,\n", p.Name, value)
	}
	b.WriteString("}\n")
	fmt.Fprintf(b, "return s.client.%s(ctx, %q, params)\n}\n", caller, e.Path)
	return nil
}

func optionalValue(p param) (string, error) {
	field := "opts." + goName(p.Name)
	if p.Default == nil {
		return field, nil
	}

	switch p.Type {
	case "strings":
		return fmt.Sprintf("sliceOr(%s)", field), nil
	case "string":
		return fmt.Sprintf("valueOr(%s, %q)", field, p.Default), nil
	case "bool", "int":
		return fmt.Sprintf("valueOr(%s, %v)", field, p.Default), nil
	default:
		return "", fmt.Errorf("param %s: defaults are not supported for type %s", p.Name, p.Type)
	}
}

func goType(t string, required bool) (string, error) {
	switch t {
	case "string", "int", "bool":
		if required {
			return t, nil
		}
		return "*" + t, nil
	case "strings":
		return "[]string", nil
	case "struct":
		return "Struct", nil
	case "structs":
		return "[]Struct", nil
	}
	return "", fmt.Errorf("unknown param type %q", t)
}

func returnType(r string) (string, string, error) {
	switch r {
	case "struct":
		return "Struct", "CallStruct", nil
	case "array":
		return "Array", "CallArray", nil
	case "string":
		return "string", "CallString", nil
	}
	return "", "", fmt.Errorf("unknown return type %q", r)
}

// goName turns a remote name (snake_case or kebab-case) into an exported identifier.
func goName(name string) string {
	var sb strings.Builder
	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' }) {
		if v, ok := initialisms[part]; ok {
			sb.WriteString(v)
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return sb.String()
}

func localName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' })
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + goName(strings.Join(parts[1:], "_"))
}
