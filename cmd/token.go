package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/infrastruture/token"
	"github.com/spf13/cobra"
)

var ErrNoSecret = errors.New("JWT_SECRET is not set")

func newTokenCmd(a *app) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the protected routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.JWTSecret == "" {
				return ErrNoSecret
			}
			tokenizer, err := token.NewJwtService(a.cfg.JWTSecret, a.cfg.JWTIssuer)
			if err != nil {
				return err
			}

			jwt, err := tokenizer.Generate(map[string]interface{}{"sub": subject}, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), jwt)
			return err
		},
	}

	tokenCmd.Flags().StringVar(&subject, "subject", "operator", "Subject claim of the token")
	tokenCmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	return tokenCmd
}
