package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/mandrill/mandrill"
)

var callFilter string

// callCmd calls any endpoint with raw JSON parameters
var callCmd = &cobra.Command{
	Use:   "call <category/method> [json-params]",
	Short: "Call an API endpoint with raw JSON parameters",
	Long: `Call any API endpoint by path, passing the parameters as a JSON object.

Example:
  mandrill call messages/search '{"query":"email:user@example.com","limit":10}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCall,
}

func init() {
	callCmd.Flags().StringVarP(&callFilter, "filter", "f", "", "filter array results with an expression or a configured filter name")
}

func runCall(cmd *cobra.Command, args []string) error {
	params := mandrill.Params{}
	if len(args) == 2 {
		value, err := decodeJSONArg("params", args[1])
		if err != nil {
			return err
		}
		object, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("params: expected a JSON object")
		}
		params = object
	}

	if _, known := mandrill.FindEndpoint(args[0]); !known {
		logger.Warn().Str("path", args[0]).Msg("Endpoint is not in the catalog, calling it anyway")
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := client.Call(cmd.Context(), args[0], params)
	if err != nil {
		return err
	}

	if callFilter != "" {
		records, ok := result.([]any)
		if !ok {
			return fmt.Errorf("--filter needs an array result, %s returned %T", args[0], result)
		}
		f, err := compileFilter(callFilter)
		if err != nil {
			return err
		}
		if result, err = f.ApplyContext(cmd.Context(), records); err != nil {
			return err
		}
	}

	return printResult(cmd.OutOrStdout(), result)
}
