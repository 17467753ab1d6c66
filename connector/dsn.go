package connector

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// DSNBuilder assembles URL style connection strings, as used by the pgx and
// go-mssqldb drivers. Empty parameters are left out and the query is
// written in key order, so equal configs give equal strings.
type DSNBuilder struct {
	u      url.URL
	port   int
	params url.Values
}

func NewDSNBuilder(scheme string) *DSNBuilder {
	return &DSNBuilder{u: url.URL{Scheme: scheme}, params: url.Values{}}
}

// Auth sets the user info. A blank username leaves it out entirely.
func (b *DSNBuilder) Auth(username, password string) *DSNBuilder {
	switch {
	case username == "":
		b.u.User = nil
	case password == "":
		b.u.User = url.User(username)
	default:
		b.u.User = url.UserPassword(username, password)
	}
	return b
}

func (b *DSNBuilder) Host(host string, port int) *DSNBuilder {
	b.u.Host = host
	b.port = port
	return b
}

// Database is written as the URL path.
func (b *DSNBuilder) Database(name string) *DSNBuilder {
	b.u.Path = ""
	if name != "" {
		b.u.Path = "/" + name
	}
	return b
}

func (b *DSNBuilder) Param(key, value string) *DSNBuilder {
	if value != "" {
		b.params.Set(key, value)
	}
	return b
}

func (b *DSNBuilder) Params(params map[string]string) *DSNBuilder {
	for k, v := range params {
		b.Param(k, v)
	}
	return b
}

func (b *DSNBuilder) Validate() error {
	if b.u.Host == "" {
		return errors.New("host is required")
	}
	if b.port <= 0 || b.port > 65535 {
		return fmt.Errorf("invalid port: %d", b.port)
	}
	return nil
}

func (b *DSNBuilder) Build() string {
	u := b.u
	if b.port > 0 {
		u.Host = net.JoinHostPort(b.u.Host, strconv.Itoa(b.port))
	}
	u.RawQuery = b.params.Encode()
	return u.String()
}
