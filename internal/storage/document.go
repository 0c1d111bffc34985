package storage

// document is the on-disk shape of the data file.
type document struct {
	Persons  []personDoc  `json:"persons"`
	Tags     []tagDoc     `json:"tags"`
	Weddings []weddingDoc `json:"weddings"`
	Tasks    []taskDoc    `json:"tasks"`
}

type personDoc struct {
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email"`
	Address  string    `json:"address"`
	Tags     []string  `json:"tags"`
	Weddings []string  `json:"weddings"`
	Tasks    []taskDoc `json:"tasks"`
	Vendor   bool      `json:"vendor"`
}

type tagDoc struct {
	Name string `json:"name"`
}

// personRef points at a person by identity.
type personRef struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type weddingDoc struct {
	Name     string      `json:"name"`
	Partner1 *personRef  `json:"partner1"`
	Partner2 *personRef  `json:"partner2"`
	Guests   []personRef `json:"guests"`
}

type taskDoc struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
	By          string `json:"by,omitempty"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
}
