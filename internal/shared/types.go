package shared

// Table names as exposed to clients (diagnostics, seed responses).
const (
	TableUsers = "Users"
	TableCards = "Cards"
)

// Column headers of the two tables, in storage order.
var (
	UserHeaders = []string{"Name", "Username", "Password", "DisplayName", "AdoptedCard"}

	CardHeaders = []string{
		"Card ID",
		"Photo ID",
		"Common Name",
		"Scientific Name",
		"Comment",
		"Foto Author",
		"Card Author",
		"Last Modified",
	}
)
