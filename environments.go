// Package cybersource provides configuration, shared types, and error
// definitions for the CyberSource REST API client. Request signing lives in
// the signature package, transport-level plumbing in the http package,
// and the individual API surfaces (customers, tokens, plans, subscriptions,
// payments) in their own packages.
package cybersource

import "fmt"

// Environment identifies a CyberSource deployment target.
type Environment string

const (
	// EnvironmentSandbox is the CyberSource test environment. Requests never
	// move real money and use test merchant credentials.
	EnvironmentSandbox Environment = "sandbox"

	// EnvironmentProduction is the live CyberSource environment.
	EnvironmentProduction Environment = "production"
)

// EnvironmentConfig contains environment-specific connection details.
type EnvironmentConfig struct {
	// Host is the API hostname for the environment, without scheme.
	Host string
}

// environments maps each known environment to its connection details.
// Hostnames verified against the CyberSource developer documentation.
var environments = map[Environment]EnvironmentConfig{
	EnvironmentSandbox: {
		Host: "apitest.cybersource.com",
	},
	EnvironmentProduction: {
		Host: "api.cybersource.com",
	},
}

// LookupEnvironment returns the configuration for a known environment.
// Returns an error for unrecognized environment names.
func LookupEnvironment(env Environment) (EnvironmentConfig, error) {
	cfg, ok := environments[env]
	if !ok {
		return EnvironmentConfig{}, fmt.Errorf("unknown environment: %q", env)
	}
	return cfg, nil
}

// SupportedEnvironments returns the list of environments this SDK knows about.
func SupportedEnvironments() []Environment {
	return []Environment{EnvironmentSandbox, EnvironmentProduction}
}
