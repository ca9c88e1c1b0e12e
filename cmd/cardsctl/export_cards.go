package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"fotoscavet-backend/internal/config"
	"fotoscavet-backend/internal/infrastructure/storage"
)

var (
	exportURL    string
	exportOutput string
	publish      bool
)

// publishKey is the object name the static site fetches.
const publishKey = "cards.json"

// Uploader stores a published file and returns where it landed.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

var exportCardsCmd = &cobra.Command{
	Use:   "export-cards",
	Short: "Write cards.json from a running API",
	Long: `Fetches ?action=getCards from the API, keeps the fields the static site
uses, sorts by card id and writes indented JSON. With --publish the same
bytes are uploaded to the STORAGE_* bucket as cards.json.`,
	Args: cobra.NoArgs,
	RunE: runExportCards,
}

func init() {
	exportCardsCmd.Flags().StringVar(&exportURL, "url", "http://localhost:8080/exec", "API endpoint")
	exportCardsCmd.Flags().StringVarP(&exportOutput, "output", "o", "cards.json", "output file")
	exportCardsCmd.Flags().BoolVar(&publish, "publish", false, "upload the file to object storage")
}

// exportedCard is the cards.json record. lastModified is dropped.
type exportedCard struct {
	CardID         string `json:"cardId"`
	PhotoID        string `json:"photoId"`
	CommonName     string `json:"commonName"`
	ScientificName string `json:"scientificName"`
	Comment        string `json:"comment"`
	FotoAuthor     string `json:"fotoAuthor"`
	CardAuthor     string `json:"cardAuthor"`
}

type getCardsResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Cards   []exportedCard `json:"cards"`
}

func runExportCards(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	log.Info().Str("url", exportURL).Msg("Fetching cards")
	cards, err := fetchCards(ctx, http.DefaultClient, exportURL)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := writeCards(&buf, cards); err != nil {
		return err
	}
	if err := os.WriteFile(exportOutput, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s with %d cards\n", exportOutput, len(cards))

	if !publish {
		return nil
	}

	storageCfg, err := config.LoadStorageConfig()
	if err != nil {
		return err
	}
	store, err := storage.NewMinIOStorage(ctx, *storageCfg)
	if err != nil {
		return err
	}

	location, err := publishCards(ctx, store, buf.Bytes())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Published %s\n", location)
	return nil
}

func publishCards(ctx context.Context, up Uploader, data []byte) (string, error) {
	location, err := up.Upload(ctx, publishKey, data, "application/json; charset=utf-8")
	if err != nil {
		return "", err
	}
	log.Info().Str("location", location).Int("bytes", len(data)).Msg("Published cards")
	return location, nil
}

func fetchCards(ctx context.Context, client *http.Client, endpoint string) ([]exportedCard, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", endpoint, err)
	}
	q := u.Query()
	q.Set("action", "getCards")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cards: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var out getCardsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if out.Status != "success" {
		msg := out.Message
		if msg == "" {
			msg = "unknown"
		}
		return nil, fmt.Errorf("API error: %s", msg)
	}

	sort.SliceStable(out.Cards, func(i, j int) bool {
		return out.Cards[i].CardID < out.Cards[j].CardID
	})
	return out.Cards, nil
}

// writeCards writes UTF-8 JSON with two-space indentation and no HTML escaping.
func writeCards(w io.Writer, cards []exportedCard) error {
	if cards == nil {
		cards = []exportedCard{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cards); err != nil {
		return fmt.Errorf("failed to write cards: %w", err)
	}
	return nil
}
