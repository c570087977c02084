package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port string `envconfig:"PORT" default:"8000"`

	MongoURI      string `envconfig:"MONGODB_URI" required:"true"`
	MongoDatabase string `envconfig:"MONGODB_DATABASE" default:"membership"`

	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`
	TokenTTLMin int    `envconfig:"TOKEN_TTL_MIN" default:"60"`

	UploadDir   string `envconfig:"UPLOAD_DIR" default:"uploads"`
	MaxUploadMB int64  `envconfig:"MAX_UPLOAD_MB" default:"10"`

	RedisURL string `envconfig:"REDIS_URL"`

	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	MailFrom     string `envconfig:"MAIL_FROM"`
	AdminEmail   string `envconfig:"ADMIN_EMAIL"`
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}
