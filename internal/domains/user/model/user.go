package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxFieldLength = 255
)

// User is one row of the Users table. Users are provisioned externally;
// the API only reads them and maintains AdoptedCard.
type User struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	Password    string `json:"password"` // plaintext, compared as stored
	DisplayName string `json:"displayName"`
	AdoptedCard string `json:"adoptedCard"` // empty or the id of the one adopted card
}

// ResolvedDisplayName applies the fallback chain displayName -> name -> username.
func (u User) ResolvedDisplayName() string {
	switch {
	case u.DisplayName != "":
		return u.DisplayName
	case u.Name != "":
		return u.Name
	default:
		return u.Username
	}
}

// HasAdoptedCard reports whether the user already holds a card.
func (u User) HasAdoptedCard() bool {
	return u.AdoptedCard != ""
}

// Ref resolves the identity forms a stored card author may take.
func (u User) Ref() UserRef {
	return UserRef{Username: u.Username, DisplayName: u.ResolvedDisplayName()}
}

// ToProfile strips the password for responses.
func (u User) ToProfile() *UserProfile {
	return &UserProfile{
		Name:        u.Name,
		Username:    u.Username,
		DisplayName: u.ResolvedDisplayName(),
		AdoptedCard: u.AdoptedCard,
	}
}

// Validate checks a user record before it is imported.
func (u User) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, MaxFieldLength),
		),
		validation.Field(&u.Password,
			validation.Required.Error("password is required"),
			validation.Length(1, MaxFieldLength),
		),
		validation.Field(&u.Name, validation.Length(0, MaxFieldLength)),
		validation.Field(&u.DisplayName, validation.Length(0, MaxFieldLength)),
	)
}

// UserRef is a user identity as stored card authors refer to it: either the
// login username or the resolved display name. Both forms exist in stored data.
type UserRef struct {
	Username    string
	DisplayName string
}

// RefForUsername builds the ref for a username that has no user row.
func RefForUsername(username string) UserRef {
	return UserRef{Username: username, DisplayName: username}
}

// Matches reports whether author names this user in either form.
func (r UserRef) Matches(author string) bool {
	return author == r.DisplayName || author == r.Username
}

// UserProfile is the login payload.
type UserProfile struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	AdoptedCard string `json:"adoptedCard"`
}

// UsersDiagnostics backs the testUsers action.
type UsersDiagnostics struct {
	Message     string   `json:"message"`
	SheetName   string   `json:"sheetName"`
	Headers     []string `json:"headers"`
	UserCount   int      `json:"userCount"`
	SampleUsers []string `json:"sampleUsers"`
}
