package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/pkg/mask"
)

func newFormatCmd(a *app) *cobra.Command {
	var cursor int

	cmd := &cobra.Command{
		Use:       "format <phone|currency|pin> <input>",
		Short:     "Apply a mask to a value and report whether it is complete",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(mask.KindPhone), string(mask.KindCurrency), string(mask.KindPIN)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, input := args[0], args[1]
			formatter, err := mask.Lookup(kind)
			if err != nil {
				return err
			}
			if formatter == nil {
				return fmt.Errorf("%w: %q", mask.ErrUnknownMask, kind)
			}

			formatted := formatter.Format(input)
			a.log.Debug().Str("kind", kind).Str("formatted", formatted).Msg("formatted value")

			fmt.Fprintf(a.out, "value: %s\n", formatted)
			fmt.Fprintf(a.out, "valid: %t\n", complete(formatter.Kind(), formatted))
			if cmd.Flags().Changed("cursor") {
				fmt.Fprintf(a.out, "cursor: %d\n", mask.ReconcileCursor(input, formatted, cursor))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&cursor, "cursor", 0, "caret offset in the input to map onto the formatted value")
	return cmd
}

// complete reports whether a formatted value satisfies its mask.
func complete(kind mask.Kind, value string) bool {
	switch kind {
	case mask.KindPhone:
		return mask.ValidPhone(value)
	case mask.KindPIN:
		return mask.ValidPIN(value)
	default:
		return value != ""
	}
}
