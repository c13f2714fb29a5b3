// Package config loads the yaml config with viper. Every key can be overridden by an
// environment variable with the CHIMERA_ prefix, e.g. CHIMERA_PINATA_TOKEN for pinata.token.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/x-xyz/chimera/domain"
)

const (
	DefaultPath = "infra/configs/config.yaml"
	EnvPrefix   = "CHIMERA"
)

func init() {
	setDefaults()
}

func setDefaults() {
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("chain.chainIdHex", "0xaa36a7")
	viper.SetDefault("chain.name", "Sepolia Test Network")
	viper.SetDefault("chain.rpcUrl", "https://rpc.sepolia.org/")
	viper.SetDefault("chain.explorerUrl", "https://sepolia.etherscan.io")
	viper.SetDefault("chain.currency.name", "ETH")
	viper.SetDefault("chain.currency.symbol", "ETH")
	viper.SetDefault("chain.currency.decimals", 18)
	viper.SetDefault("chain.maxConcurrentCalls", 8)
	viper.SetDefault("wallet.pollInterval", time.Second)
	viper.SetDefault("marketplace.confirmTimeout", 5*time.Minute)
	viper.SetDefault("http.timeout", 10*time.Second)
	viper.SetDefault("http.retryMax", 3)
	viper.SetDefault("cache.sizeMb", 16)
	viper.SetDefault("cache.ttl", time.Hour)
	viper.SetDefault("catalog.workers", 10)
	viper.SetDefault("ens.ttl", 10*time.Minute)
	viper.SetDefault("app_name", "chimera")
}

// Load reads .env into the process environment when present, then the yaml file at path
func Load(path string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return xerrors.Errorf("failed to load .env: %w", err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(path)
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		return xerrors.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

// Require fails with ErrMissingConfig naming the first empty key
func Require(keys ...string) error {
	for _, k := range keys {
		if len(viper.GetString(k)) == 0 {
			return xerrors.Errorf("%s is required: %w", k, domain.ErrMissingConfig)
		}
	}
	return nil
}
