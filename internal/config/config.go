package config

type Config struct {
	Environment Environment
	Log         Log
	Latency     Latency
	Storage     Storage  `envPrefix:"STORAGE_"`
	Checkout    Checkout `envPrefix:"CHECKOUT_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"` // json, console
}

type Latency struct {
	// multiplier over the reference delay of every store operation, 0 disables
	Scale float64 `env:"LATENCY_SCALE" envDefault:"1"`
}

type Storage struct {
	Driver        string `env:"DRIVER" envDefault:"sqlite"` // sqlite, mysql, redis, none
	DSN           string `env:"DSN" envDefault:"gamestore.db"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	KeyPrefix     string `env:"KEY_PREFIX" envDefault:"gamestore:"`
}

type Checkout struct {
	ServiceFeeRate string `env:"SERVICE_FEE_RATE" envDefault:"0.05"`
}
