package model

// CardSeed pairs a card with its photo.
type CardSeed struct {
	CardID  string `json:"cardId"`
	PhotoID string `json:"photoId"`
}

// ToCard returns the blank, unadopted card for the seed entry.
func (s CardSeed) ToCard() Card {
	return Card{CardID: s.CardID, PhotoID: s.PhotoID}
}

// SeedData is the fixed catalog. Cards are never created outside this list.
var SeedData = []CardSeed{
	{CardID: "01FC05", PhotoID: "FotosCavet00005"},
	{CardID: "02FC08", PhotoID: "FotosCavet00008"},
	{CardID: "03FC12", PhotoID: "FotosCavet00012"},
	{CardID: "04FC15", PhotoID: "FotosCavet00015"},
	{CardID: "05FC06", PhotoID: "FotosCavet00006"},
	{CardID: "06FC04", PhotoID: "FotosCavet00004"},
	{CardID: "07FC02", PhotoID: "FotosCavet00002"},
	{CardID: "08FC07", PhotoID: "FotosCavet00007"},
	{CardID: "09FC01", PhotoID: "FotosCavet00001"},
	{CardID: "10FC20", PhotoID: "FotosCavet00020"},
	{CardID: "11FC43", PhotoID: "FotosCavet00043"},
	{CardID: "12FC45", PhotoID: "FotosCavet00045"},
	{CardID: "13FC03", PhotoID: "FotosCavet00003"},
	{CardID: "14FC30", PhotoID: "FotosCavet00030"},
	{CardID: "15FC34", PhotoID: "FotosCavet00034"},
}
