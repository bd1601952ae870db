package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var label = color.New(color.FgGreen, color.Bold).SprintFunc()

// field is one labelled line of text output.
type field struct {
	name  string
	value any
}

// render writes v as JSON when --json is set, otherwise one "name: value"
// line per field.
func render(cmd *cobra.Command, v any, fields ...field) error {
	w := cmd.OutOrStdout()
	if appCtx.Config.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return writeFields(w, fields)
}

func writeFields(w io.Writer, fields []field) error {
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%s %v\n", label(f.name+":"), f.value); err != nil {
			return err
		}
	}
	return nil
}

// parseUint parses a decimal uint64 positional argument.
func parseUint(name, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return n, nil
}

// markRequired marks flags required, ignoring the error cobra only returns
// for unknown names.
func markRequired(cmd *cobra.Command, names ...string) {
	for _, n := range names {
		_ = cmd.MarkFlagRequired(n)
	}
}
