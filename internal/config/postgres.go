package config

// Postgres locates the database server. Credentials are never configured:
// both portals prompt for them at startup.
type Postgres struct {
	Host    string `env:"PG_HOST" envDefault:"localhost"`
	Port    int    `env:"PG_PORT" envDefault:"5432"`
	SSLMode string `env:"PG_SSLMODE" envDefault:"disable"`

	GymDB   string `env:"PG_GYM_DB" envDefault:"mma_gym"`
	SpellDB string `env:"PG_SPELL_DB" envDefault:"spellbook"`
}
