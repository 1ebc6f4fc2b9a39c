package config

import "time"

type DB struct {
	Url string `envconfig:"URL"`
}

type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"0"`
}

// Services holds the base URLs of the sibling services used for
// referential-integrity lookups, plus the shared client timeout.
type Services struct {
	CustomerURL string        `envconfig:"CUSTOMER_URL" default:"http://127.0.0.1:1500"`
	AccountURL  string        `envconfig:"ACCOUNT_URL" default:"http://127.0.0.1:1501"`
	CardURL     string        `envconfig:"CARD_URL" default:"http://127.0.0.1:1502"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"5s"`
}

// CardFormat carries the PAN/CVV validation patterns for the card service.
type CardFormat struct {
	PanFormat string `envconfig:"PAN_FORMAT" default:"^[0-9]{16}$"`
	CvvFormat string `envconfig:"CVV_FORMAT" default:"^[0-9]{3}$"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      string `envconfig:"LEVEL" default:"info"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:""`
}

type AppConfig struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    Server     `envconfig:"APP"`
	DB        DB         `envconfig:"DATABASE"`
	Services  Services   `envconfig:"SERVICES"`
	Card      CardFormat `envconfig:"CARD_VALIDATION"`
	RateLimit RateLimit  `envconfig:"RATE_LIMIT"`
	Log       Log        `envconfig:"LOG"`
}
