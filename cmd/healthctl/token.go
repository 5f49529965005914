package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2beens/healthtracker/pkg"
)

const generatedTokenBytes = 32

// newHashTokenCmd prints the bcrypt hash to set as HEALTH_API_TOKEN_HASH.
func newHashTokenCmd() *cobra.Command {
	var generate bool

	cmd := &cobra.Command{
		Use:   "hash-token [token]",
		Short: "Hash an API token for the service configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string
			switch {
			case len(args) == 1 && generate:
				return errors.New("either pass a token or --generate")
			case len(args) == 1:
				token = args[0]
			case generate:
				var err error
				if token, err = pkg.GenerateRandomString(generatedTokenBytes); err != nil {
					return fmt.Errorf("generate token: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "token: %s\n", token)
			default:
				return errors.New("token missing")
			}

			hash, err := pkg.HashToken(token)
			if err != nil {
				return fmt.Errorf("hash token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().BoolVar(&generate, "generate", false, "generate a random token")
	return cmd
}
