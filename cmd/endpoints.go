package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/s0up4200/mandrill/filter"
	"github.com/s0up4200/mandrill/mandrill"
)

// addEndpointCommands adds one command per catalog category, with one
// subcommand per endpoint.
func addEndpointCommands(root *cobra.Command) error {
	categories, err := mandrill.Catalog()
	if err != nil {
		return err
	}

	for _, category := range categories {
		if len(category.Endpoints) == 0 {
			continue
		}

		group := &cobra.Command{
			Use:     category.Name,
			Short:   category.Description,
			GroupID: "api",
		}
		for _, endpoint := range category.Endpoints {
			cmd, err := newEndpointCommand(endpoint)
			if err != nil {
				return fmt.Errorf("%s: %w", endpoint.Path, err)
			}
			group.AddCommand(cmd)
		}
		root.AddCommand(group)
	}

	root.AddGroup(&cobra.Group{ID: "api", Title: "API Endpoints:"})
	return nil
}

// newEndpointCommand builds the command of a single endpoint. Each parameter
// becomes a flag named after it with dashes instead of underscores.
func newEndpointCommand(endpoint mandrill.Endpoint) (*cobra.Command, error) {
	var filterExpr string

	cmd := &cobra.Command{
		Use:   endpoint.Method(),
		Short: endpoint.Description,
		Long:  fmt.Sprintf("%s\n\nCalls %s.", endpoint.Description, endpoint.Path),
		Args:  cobra.NoArgs,
	}

	for _, p := range endpoint.Params {
		addParamFlag(cmd.Flags(), p)
		if p.Required {
			if err := cmd.MarkFlagRequired(flagName(p.Name)); err != nil {
				return nil, err
			}
		}
	}

	if endpoint.Returns == mandrill.ReturnsArray {
		cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression, or the name of a filter from the config")
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		params, err := paramsFromFlags(cmd.Flags(), endpoint.Params)
		if err != nil {
			return err
		}

		var f *filter.Filter
		if filterExpr != "" {
			if f, err = compileFilter(filterExpr); err != nil {
				return err
			}
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Close()

		result, err := client.Call(cmd.Context(), endpoint.Path, params)
		if err != nil {
			return err
		}

		if records, ok := result.([]any); ok && f != nil {
			matched, err := f.ApplyContext(cmd.Context(), records)
			if err != nil {
				return err
			}
			logger.Debug().Int("total", len(records)).Int("matched", len(matched)).Msg("Filtered results")
			result = matched
		}

		return printResult(cmd.OutOrStdout(), result)
	}

	return cmd, nil
}

func flagName(param string) string {
	return strings.ReplaceAll(param, "_", "-")
}

func addParamFlag(flags *pflag.FlagSet, p mandrill.Param) {
	name := flagName(p.Name)
	usage := string(p.Type)
	if p.HasDefault() {
		usage = fmt.Sprintf("%s (default %v)", usage, p.Default)
	}

	switch p.Type {
	case mandrill.TypeInt:
		flags.Int(name, 0, usage)
	case mandrill.TypeBool:
		flags.Bool(name, false, usage)
	case mandrill.TypeStrings:
		flags.StringSlice(name, nil, usage+", comma separated or repeated")
	case mandrill.TypeStruct:
		flags.String(name, "", usage+" as a JSON object")
	case mandrill.TypeStructs:
		flags.String(name, "", usage+" as a JSON array")
	default:
		flags.String(name, "", usage)
	}
}

// paramsFromFlags builds the call parameters. Flags that were not given are
// sent as their documented default, or null.
func paramsFromFlags(flags *pflag.FlagSet, params []mandrill.Param) (mandrill.Params, error) {
	out := make(mandrill.Params, len(params))

	for _, p := range params {
		name := flagName(p.Name)
		if !flags.Changed(name) {
			if p.HasDefault() {
				out[p.Name] = p.Default
			} else {
				out[p.Name] = nil
			}
			continue
		}

		var (
			value any
			err   error
		)
		switch p.Type {
		case mandrill.TypeInt:
			value, err = flags.GetInt(name)
		case mandrill.TypeBool:
			value, err = flags.GetBool(name)
		case mandrill.TypeStrings:
			value, err = flags.GetStringSlice(name)
		case mandrill.TypeStruct, mandrill.TypeStructs:
			value, err = jsonFlag(flags, name, p.Type)
		default:
			value, err = flags.GetString(name)
		}
		if err != nil {
			return nil, err
		}
		out[p.Name] = value
	}

	return out, nil
}

func jsonFlag(flags *pflag.FlagSet, name string, typ mandrill.ParamType) (any, error) {
	raw, err := flags.GetString(name)
	if err != nil {
		return nil, err
	}

	value, err := decodeJSONArg("--"+name, raw)
	if err != nil {
		return nil, err
	}

	switch value.(type) {
	case map[string]any:
		if typ == mandrill.TypeStruct {
			return value, nil
		}
	case []any:
		if typ == mandrill.TypeStructs {
			return value, nil
		}
	}
	want := "object"
	if typ == mandrill.TypeStructs {
		want = "array"
	}
	return nil, fmt.Errorf("--%s: expected a JSON %s", name, want)
}

// compileFilter resolves a configured filter name, then compiles the expression
func compileFilter(nameOrExpr string) (*filter.Filter, error) {
	expression := nameOrExpr
	if cfg != nil {
		if named, ok := cfg.Filters[nameOrExpr]; ok {
			expression = named
		}
	}

	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}
