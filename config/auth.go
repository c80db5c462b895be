package config

// AuthConfig contains approval authorization configuration.
type AuthConfig struct {
	// AdminIDs lists platform operator ids allowed to settle any job's logs.
	// Employers can always settle their own jobs regardless of this list.
	AdminIDs []string `env:"ADMIN_IDS" envDefault:""`
}
