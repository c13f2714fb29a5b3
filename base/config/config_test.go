package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/chimera/domain"
)

type configSuite struct {
	suite.Suite

	path string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(configSuite))
}

func (s *configSuite) SetupTest() {
	viper.Reset()
	setDefaults()

	s.path = filepath.Join(s.T().TempDir(), "config.yaml")
	yaml := []byte("debug: true\n" +
		"server:\n  address: \":9000\"\n" +
		"marketplace:\n  artifact: infra/contracts/marketplace.json\n" +
		"pinata:\n  token: \"\"\n")
	s.Require().NoError(os.WriteFile(s.path, yaml, 0o600))
}

func (s *configSuite) TestLoad() {
	s.Require().NoError(Load(s.path))
	s.True(viper.GetBool("debug"))
	s.Equal(":9000", viper.GetString("server.address"))
	s.Equal("0xaa36a7", viper.GetString("chain.chainIdHex"))
	s.Equal(5*time.Minute, viper.GetDuration("marketplace.confirmTimeout"))
}

func (s *configSuite) TestEnvOverride() {
	s.T().Setenv("CHIMERA_PINATA_TOKEN", "jwt-from-env")
	s.T().Setenv("CHIMERA_SERVER_ADDRESS", ":7000")
	s.Require().NoError(Load(s.path))
	s.Equal("jwt-from-env", viper.GetString("pinata.token"))
	s.Equal(":7000", viper.GetString("server.address"))
}

func (s *configSuite) TestRequire() {
	s.Require().NoError(Load(s.path))
	s.NoError(Require("marketplace.artifact"))
	s.ErrorIs(Require("marketplace.artifact", "pinata.token"), domain.ErrMissingConfig)
}

func (s *configSuite) TestMissingFile() {
	s.Error(Load(filepath.Join(s.T().TempDir(), "absent.yaml")))
}
