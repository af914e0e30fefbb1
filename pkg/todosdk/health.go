package todosdk

import "github.com/tidylist/tidylist/pkg/jwtx"

// HealthChecks reports the status of individual dependencies.
type HealthChecks struct {
	Database string `json:"database,omitempty"`
	Signer   string `json:"signer,omitempty"`
}

// HealthResponse is the body returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// JWKSResponse is the body returned by the JWKS endpoint.
type JWKSResponse = jwtx.JWKS
