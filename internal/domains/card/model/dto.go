package model

import "net/url"

// Response messages
const (
	MsgAdopted  = "Fitxa adoptada correctament"
	MsgSaved    = "Fitxa guardada correctament"
	MsgReleased = "Fitxa alliberada correctament"

	MsgCardsTableMissing      = "Cards sheet not found"
	MsgCardsTableMissingSetup = "Cards sheet not found. Please run setupCardsSheet first."
)

// SaveCardInput drives the save/adopt transition.
// A nil field was omitted by the caller and keeps its stored value;
// a pointer to "" is an explicit blank.
type SaveCardInput struct {
	CardID         string
	CommonName     *string
	ScientificName *string // accepted, never written
	Comment        *string
	FotoAuthor     *string // accepted, never written
	CardAuthor     *string
	Username       string
}

// SaveCardResult is returned on a successful save.
type SaveCardResult struct {
	CardID  string `json:"cardId"`
	Adopted bool   `json:"adopted"`
	Message string `json:"message"`
}

// UnadoptResult is returned when a card is released.
type UnadoptResult struct {
	CardID  string `json:"cardId"`
	Message string `json:"message"`
}

// SetupResult describes a seeding run.
type SetupResult struct {
	Message string   `json:"message"`
	Headers []string `json:"headers"`
	Count   int      `json:"-"`
}

// SaveCardRequest is the JSON body accepted on POST.
type SaveCardRequest struct {
	ID             string `json:"id"`
	CardID         string `json:"cardId"`
	CommonName     string `json:"commonName"`
	ScientificName string `json:"scientificName"`
	Comment        string `json:"comment"`
	FotoAuthor     string `json:"fotoAuthor"`
	CardAuthor     string `json:"cardAuthor"`
	Username       string `json:"username"`
}

// ToInput maps the body onto a save. Absent body fields arrive as "" and
// are passed as explicit blanks, so a POST always overwrites the writable
// fields. This differs from the query-string path on purpose.
func (r SaveCardRequest) ToInput() SaveCardInput {
	return SaveCardInput{
		CardID:         firstNonEmpty(r.ID, r.CardID),
		CommonName:     strPtr(r.CommonName),
		ScientificName: strPtr(r.ScientificName),
		Comment:        strPtr(r.Comment),
		FotoAuthor:     strPtr(r.FotoAuthor),
		CardAuthor:     strPtr(r.CardAuthor),
		Username:       firstNonEmpty(r.Username, r.CardAuthor),
	}
}

// SaveCardInputFromQuery maps query parameters onto a save.
// Parameters that are absent stay nil and keep the stored value.
func SaveCardInputFromQuery(q url.Values) SaveCardInput {
	return SaveCardInput{
		CardID:         q.Get("cardId"),
		CommonName:     queryPtr(q, "commonName"),
		ScientificName: queryPtr(q, "scientificName"),
		Comment:        queryPtr(q, "comment"),
		FotoAuthor:     queryPtr(q, "fotoAuthor"),
		CardAuthor:     queryPtr(q, "cardAuthor"),
		Username:       firstNonEmpty(q.Get("username"), q.Get("cardAuthor")),
	}
}

func queryPtr(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	return strPtr(q.Get(key))
}

func strPtr(s string) *string {
	return &s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
