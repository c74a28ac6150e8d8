package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads and parses the hubspot.config.yml file.
func LoadConfig(filename string) (*HubSpotConfig, error) {
	fileBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filename, err)
	}

	var cfg HubSpotConfig
	if err := yaml.Unmarshal(fileBytes, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in '%s': %w", filename, err)
	}
	return &cfg, nil
}

// AccessToken resolves the bearer token for the named portal. An empty
// portalName selects the config's defaultPortal. The token is trimmed of
// surrounding whitespace (config files written by the CLI sometimes use YAML
// block scalars that leave a trailing newline).
func (c *HubSpotConfig) AccessToken(portalName string) (string, error) {
	target := portalName
	if target == "" {
		target = c.DefaultPortal
	}
	if target == "" {
		return "", fmt.Errorf("no portal specified and no defaultPortal found in config")
	}

	for _, portal := range c.Portals {
		if portal.Name != target {
			continue
		}
		token := strings.TrimSpace(portal.Auth.TokenInfo.AccessToken)
		if token == "" {
			return "", fmt.Errorf("no access token found for portal '%s'", target)
		}
		return token, nil
	}
	return "", fmt.Errorf("portal '%s' not found in config", target)
}

// TokenProvider resolves a bearer token on demand. It is the seam through
// which the import/export flows obtain credentials, so tests can substitute
// a stub without touching the filesystem.
type TokenProvider interface {
	AccessToken() (string, error)
}

// FileTokenProvider resolves tokens from a hubspot.config.yml file, with the
// TokenEnvVar environment variable taking precedence when set.
type FileTokenProvider struct {
	// ConfigFile is the path to hubspot.config.yml. Empty means DefaultConfigFile.
	ConfigFile string
	// Portal selects the portal entry. Empty means the config's defaultPortal.
	Portal string
}

// AccessToken implements TokenProvider.
func (p *FileTokenProvider) AccessToken() (string, error) {
	if env := strings.TrimSpace(os.Getenv(TokenEnvVar)); env != "" {
		return env, nil
	}
	path := p.ConfigFile
	if path == "" {
		path = DefaultConfigFile
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return "", err
	}
	return cfg.AccessToken(p.Portal)
}
