package remote

import (
	"context"
	"fmt"
	"net/http"

	"io.winapps.florafauna/internal/db"
)

// Driver selects how the service reaches the backend
type Driver string

const (
	DriverREST     Driver = "rest"
	DriverPostgres Driver = "postgres"
)

// ParseDriver validates a configured driver name
func ParseDriver(s string) (Driver, error) {
	switch Driver(s) {
	case DriverREST, "":
		return DriverREST, nil
	case DriverPostgres:
		return DriverPostgres, nil
	}
	return "", fmt.Errorf("unknown store driver %q", s)
}

// ConnectOptions carries driver-specific settings
type ConnectOptions struct {
	HTTPClient *http.Client
	Postgres   db.PostgresOptions
}

// Connect opens a store for the given endpoint and access key. For the rest
// driver the endpoint is the project URL; for postgres it is a connection
// string and a non-empty key replaces its password.
func Connect(ctx context.Context, driver Driver, endpoint, accessKey string, opts ConnectOptions) (Store, error) {
	switch driver {
	case DriverREST:
		return NewRESTClient(endpoint, accessKey, opts.HTTPClient)
	case DriverPostgres:
		pool, err := db.InitPostgres(ctx, endpoint, accessKey, opts.Postgres)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(pool), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", driver)
}
