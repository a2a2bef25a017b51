// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable
// interpolation, which is how TURN credentials and the database password
// are supplied in deployment.
package config
