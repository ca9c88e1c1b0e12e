package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"fotoscavet-backend/internal/domains/user/model"
	"fotoscavet-backend/internal/infrastructure/workbook"
	"fotoscavet-backend/internal/shared"
)

var importUsersCmd = &cobra.Command{
	Use:   "import-users <file.json|file.xlsx>",
	Short: "Upsert users from a JSON array or a workbook",
	Long: `Reads a JSON array of {name, username, password, displayName, adoptedCard}
objects, or the Users sheet of an .xlsx workbook with the columns
Name, Username, Password, DisplayName, AdoptedCard, and upserts them by
username. The batch is rejected as a whole if any record is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runImportUsers,
}

func runImportUsers(cmd *cobra.Command, args []string) error {
	users, err := readUsersFile(args[0])
	if err != nil {
		return err
	}

	c, err := openStore()
	if err != nil {
		return err
	}
	defer c.Cleanup()

	n, err := c.UserService.ImportUsers(cmd.Context(), users)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d users\n", n)
	return nil
}

func readUsersFile(path string) ([]model.User, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readUsersWorkbook(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return users, nil
}

func readUsersWorkbook(path string) ([]model.User, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := workbook.ReadSheet(f, shared.TableUsers, len(shared.UserHeaders))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, model.User{
			Name:        row[0],
			Username:    row[1],
			Password:    row[2],
			DisplayName: row[3],
			AdoptedCard: row[4],
		})
	}
	return users, nil
}
