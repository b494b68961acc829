// Package config loads statshypo settings.
//
// Precedence is defaults, then the YAML file, then environment variables
// (after .env is read):
//
//	cfg, err := config.NewLoader().
//	    WithConfigPath("statshypo.yaml").
//	    WithEnvPrefix("STATSHYPO").
//	    Load()
//
// Nested fields join their env tags with underscores, so
// bootstrap.iterations is STATSHYPO_BOOTSTRAP_ITERATIONS.
package config
