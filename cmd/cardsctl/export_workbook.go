package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	cardmodel "fotoscavet-backend/internal/domains/card/model"
	cardrepo "fotoscavet-backend/internal/domains/card/repository"
	usermodel "fotoscavet-backend/internal/domains/user/model"
	userrepo "fotoscavet-backend/internal/domains/user/repository"
	"fotoscavet-backend/internal/infrastructure/workbook"
	"fotoscavet-backend/internal/shared"
)

var exportWorkbookCmd = &cobra.Command{
	Use:   "export-workbook <file.xlsx>",
	Short: "Dump the Users and Cards tables into one workbook",
	Long: `Writes one sheet per table with the header row first. A table that has
not been provisioned yet is written as a header-only sheet.`,
	Args: cobra.ExactArgs(1),
	RunE: runExportWorkbook,
}

func runExportWorkbook(cmd *cobra.Command, args []string) error {
	c, err := openStore()
	if err != nil {
		return err
	}
	defer c.Cleanup()

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", args[0], err)
	}
	defer f.Close()

	if err := writeWorkbook(cmd.Context(), f, c.UserRepo, c.CardRepo); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[0])
	return nil
}

func writeWorkbook(ctx context.Context, w io.Writer, users userrepo.Repository, cards cardrepo.Repository) error {
	userRows, err := users.List(ctx)
	if err != nil && !errors.Is(err, shared.ErrTableNotFound) {
		return fmt.Errorf("failed to list users: %w", err)
	}
	cardRows, err := cards.List(ctx)
	if err != nil && !errors.Is(err, shared.ErrTableNotFound) {
		return fmt.Errorf("failed to list cards: %w", err)
	}

	log.Info().
		Int("users", len(userRows)).
		Int("cards", len(cardRows)).
		Msg("Exporting workbook")

	return workbook.Write(w,
		workbook.Sheet{Name: shared.TableUsers, Headers: shared.UserHeaders, Rows: userSheetRows(userRows)},
		workbook.Sheet{Name: shared.TableCards, Headers: shared.CardHeaders, Rows: cardSheetRows(cardRows)},
	)
}

func userSheetRows(users []usermodel.User) [][]string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.Name, u.Username, u.Password, u.DisplayName, u.AdoptedCard})
	}
	return rows
}

func cardSheetRows(cards []cardmodel.Card) [][]string {
	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, []string{
			c.CardID, c.PhotoID, c.CommonName, c.ScientificName,
			c.Comment, c.FotoAuthor, c.CardAuthor, c.LastModified,
		})
	}
	return rows
}
