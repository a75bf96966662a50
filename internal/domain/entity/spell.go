package entity

type Spell struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Alias string `json:"alias,omitempty" db:"alias"`
}

// AliasOrNA renders the optional alias the way the catalog prints it.
func (s Spell) AliasOrNA() string {
	if s.Alias == "" {
		return "N/A"
	}
	return s.Alias
}
