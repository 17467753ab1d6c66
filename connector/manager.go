package connector

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Konsultn-Engineering/sqlb/dialect"
)

// ErrNoDriver is returned for a dialect without a registered Provider.
// Oracle and MS Access have none until one is registered.
var ErrNoDriver = errors.New("connector: no driver for dialect")

var globalManager = &Manager{
	providers: map[dialect.Kind]Provider{
		dialect.MySQL:     mysqlProvider{},
		dialect.SQLServer: sqlServerProvider{},
		dialect.Postgres:  postgresProvider{},
	},
}

// Manager maps dialects to providers.
type Manager struct {
	providers map[dialect.Kind]Provider
	mu        sync.RWMutex
}

// Register installs or replaces the provider for kind, e.g. an Oracle driver.
func Register(kind dialect.Kind, provider Provider) {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.providers[kind] = provider
}

// ProviderFor returns the provider registered for kind.
func ProviderFor(kind dialect.Kind) (Provider, error) {
	if kind == "" {
		kind = dialect.Default
	}
	globalManager.mu.RLock()
	provider, ok := globalManager.providers[kind]
	globalManager.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoDriver, kind)
	}
	return provider, nil
}
