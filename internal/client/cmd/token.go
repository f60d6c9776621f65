package cmd

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

// newTokenCmd mints a bearer token for local use. A server running without
// a token secret accepts any well-formed token, so the signing key only
// matters when the server verifies signatures; pass the same --secret then.
func newTokenCmd() *cobra.Command {
	var sub, username, email, secret string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local use",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sub == "" {
				return fmt.Errorf("--sub is required")
			}
			claims := jwt.MapClaims{
				"sub": sub,
				"exp": time.Now().Add(ttl).Unix(),
			}
			if username != "" {
				claims["cognito:username"] = username
			}
			if email != "" {
				claims["email"] = email
			}
			t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
			signed, err := t.SignedString([]byte(secret))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}
	cmd.Flags().StringVar(&sub, "sub", "", "Subject (user id) claim")
	cmd.Flags().StringVar(&username, "username", "", "cognito:username claim")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().StringVar(&secret, "secret", "local-dev", "HS256 signing secret")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	return cmd
}
