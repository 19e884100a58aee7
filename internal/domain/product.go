package domain

type Product struct {
	ID          string
	Title       string
	OrgName     string
	Category    string
	Price       Money
	ImageURL    string
	Description string
	Features    []string
	AboutOrg    string
}
