package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type Config struct {
	LogLevel       slog.Level         `mapstructure:"log_level"`
	HTTPServerAddr string             `mapstructure:"http_server_addr"`
	StorageDir     string             `mapstructure:"storage_dir"`
	CurrencyRates  map[string]float64 `mapstructure:"currency_rates"`
}

// Load reads the config file selected by the STOREFRONT_CONFIG_FILE
// env var or the --config flag. A missing file falls back to the
// defaults, a broken one is fatal.
func Load() Config {
	viper.SetDefault("log_level", int(slog.LevelInfo))
	viper.SetDefault("http_server_addr", ":8080")
	viper.SetDefault("storage_dir", "./data")
	viper.SetDefault("currency_rates", map[string]float64{})

	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "./config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	StorageDir=%q
	CurrencyRates=%v
`
	s := fmt.Sprintf(tamplate,
		c.LogLevel, c.HTTPServerAddr, c.StorageDir, c.CurrencyRates,
	)
	fmt.Println(s)
}
