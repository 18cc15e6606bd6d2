package cmd

import (
	"errors"
	"fmt"

	"eatery/configs"
	"eatery/utils"

	"github.com/spf13/cobra"
)

var (
	tokenUserID uint
	tokenRole   string
)

// tokens normally come from the identity provider; this is for local use
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a signed bearer token for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenUserID == 0 {
			return errors.New("--user-id is required")
		}
		cfg := configs.LoadConfig()
		tok, err := utils.GenerateToken(tokenUserID, tokenRole, cfg.JWTSecret, cfg.JWTTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().UintVar(&tokenUserID, "user-id", 0, "user id to put in the token")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "owner", "role claim (owner or customer)")
}
