package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCardsCmd = &cobra.Command{
	Use:   "seed-cards",
	Short: "Create the Cards table and overwrite it with the 15 seed cards",
	Long: `Creates the Cards table when missing and rewrites every row from the
fixed seed list. All adoptions and edits are lost; Users rows are not
touched, so run this only on a fresh store or together with a users import.`,
	Args: cobra.NoArgs,
	RunE: runSeedCards,
}

func runSeedCards(cmd *cobra.Command, args []string) error {
	c, err := openStore()
	if err != nil {
		return err
	}
	defer c.Cleanup()

	result, err := c.CardService.SetupCards(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Message)
	return nil
}
