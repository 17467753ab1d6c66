package connector

// Provider knows how to reach one kind of database through database/sql.
type Provider interface {
	// DriverName is the name the driver registered with database/sql.
	DriverName() string
	DefaultPort() int
	// DSN turns the configuration into a connection string for the driver.
	DSN(cfg Config) (string, error)
}
