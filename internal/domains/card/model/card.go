package model

import "time"

// LastModifiedLayout matches JavaScript's Date.prototype.toISOString output.
const LastModifiedLayout = "2006-01-02T15:04:05.000Z07:00"

// Card is one catalog entry. CardID and PhotoID are fixed by the seed;
// ScientificName and FotoAuthor are never written after seeding.
type Card struct {
	CardID         string `json:"cardId"`
	PhotoID        string `json:"photoId"`
	CommonName     string `json:"commonName"`
	ScientificName string `json:"scientificName"`
	Comment        string `json:"comment"`
	FotoAuthor     string `json:"fotoAuthor"`
	CardAuthor     string `json:"cardAuthor"` // empty = not adopted
	LastModified   string `json:"lastModified"`
}

// IsAdopted reports whether someone holds the card.
func (c *Card) IsAdopted() bool {
	return c.CardAuthor != ""
}

// CardUpdate is a partial write: nil fields keep the stored value.
type CardUpdate struct {
	CommonName   *string
	Comment      *string
	CardAuthor   *string
	LastModified *string
}

// Apply copies the non-nil fields onto c.
func (u CardUpdate) Apply(c *Card) {
	if u.CommonName != nil {
		c.CommonName = *u.CommonName
	}
	if u.Comment != nil {
		c.Comment = *u.Comment
	}
	if u.CardAuthor != nil {
		c.CardAuthor = *u.CardAuthor
	}
	if u.LastModified != nil {
		c.LastModified = *u.LastModified
	}
}

// IsEmpty reports whether the update would write nothing.
func (u CardUpdate) IsEmpty() bool {
	return u.CommonName == nil && u.Comment == nil && u.CardAuthor == nil && u.LastModified == nil
}

// FormatTimestamp renders t the way LastModified is stored.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(LastModifiedLayout)
}
