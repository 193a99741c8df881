package models

// Character is a record from the remote character API. It is fetched fresh
// per request and never persisted as a whole; saved conversations keep the
// names only.
type Character struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Status  string          `json:"status"`
	Species string          `json:"species"`
	Gender  string          `json:"gender"`
	Origin  CharacterOrigin `json:"origin"`
	Image   string          `json:"image"`
}

type CharacterOrigin struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Location groups characters as residents of a place in the show.
type Location struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Dimension string   `json:"dimension"`
	Residents []string `json:"residents"`
}

// CharacterNote is a free-text annotation attached to a character id.
type CharacterNote struct {
	CharacterID int    `db:"character_id"`
	Note        string `db:"note"`
}
