package configs

// CORS lists the browser origins allowed to call the API.
type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
	MaxAge         int      `env:"MAX_AGE" envDefault:"300"`
}
