package model

// Scope identifies the caller of a request.
type Scope struct {
	UserID    string
	RequestID string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)
