// Package config reads the HubSpot CLI configuration file (hubspot.config.yml)
// and resolves per-portal access tokens from it.
package config

// Defaults for the credential configuration.
const (
	// DefaultConfigFile is the conventional location of the HubSpot CLI config
	// relative to the working directory.
	DefaultConfigFile = "hubspot.config.yml"

	// TokenEnvVar, when set, takes precedence over the config file entirely.
	TokenEnvVar = "HUBSPOT_ACCESS_TOKEN"
)

// HubSpotConfig mirrors the layout of hubspot.config.yml as written by the
// HubSpot CLI. Only the fields needed for token resolution are mapped.
type HubSpotConfig struct {
	// DefaultPortal names the portal used when none is requested explicitly.
	DefaultPortal string `yaml:"defaultPortal"`
	// Portals lists the configured accounts, each carrying its own credentials.
	Portals []PortalConfig `yaml:"portals"`
}

// PortalConfig describes one named HubSpot account entry.
type PortalConfig struct {
	Name     string     `yaml:"name"`
	PortalID int        `yaml:"portalId,omitempty"`
	Auth     AuthConfig `yaml:"auth"`
}

// AuthConfig wraps the token block for a portal.
type AuthConfig struct {
	TokenInfo TokenInfo `yaml:"tokenInfo"`
}

// TokenInfo carries the bearer credential for API calls.
type TokenInfo struct {
	AccessToken string `yaml:"accessToken"`
}
