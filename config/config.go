// Package config loads the role catalog and the process environment.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/claricenunes/quemequem"
	"github.com/joho/godotenv"
	"github.com/titanous/json5"
	"gopkg.in/yaml.v3"
)

//go:embed roles.yaml
var defaultCatalog []byte

// Catalog is an ordered set of role configurations. Fields left empty on a
// role are filled from Defaults.
type Catalog struct {
	Defaults quemequem.Role   `json:"defaults" yaml:"defaults"`
	Roles    []*quemequem.Role `json:"roles" yaml:"roles"`
}

// Default returns the catalog of ministers bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog, "yaml")
}

// Load reads a catalog file. The format follows the extension: .yaml and .yml
// are YAML, .json and .json5 are JSON5.
func Load(path string) (*Catalog, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch format {
	case "yaml", "yml", "json", "json5":
	default:
		return nil, quemequem.Errorf(quemequem.EINVALID, "unsupported catalog format: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, quemequem.Errorf(quemequem.ENOTFOUND, "catalog not found: %s", path)
		}
		return nil, err
	}
	return Parse(data, format)
}

// Parse decodes a catalog, applies the defaults to every role and validates
// the result.
func Parse(data []byte, format string) (*Catalog, error) {
	var c Catalog
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, quemequem.Errorf(quemequem.EINVALID, "parse catalog: %v", err)
		}
	case "json", "json5":
		if err := json5.Unmarshal(data, &c); err != nil {
			return nil, quemequem.Errorf(quemequem.EINVALID, "parse catalog: %v", err)
		}
	default:
		return nil, quemequem.Errorf(quemequem.EINVALID, "unsupported catalog format %q", format)
	}

	if err := c.applyDefaults(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) applyDefaults() error {
	for i, role := range c.Roles {
		if role == nil {
			return quemequem.Errorf(quemequem.EINVALID, "role %d is empty", i)
		}
		if err := mergo.Merge(role, c.Defaults); err != nil {
			return quemequem.Errorf(quemequem.EINTERNAL, "apply defaults to %q: %v", role.ID, err)
		}
	}
	return nil
}

// Validate returns an error if any role is invalid or if two roles share an ID.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Roles))
	for _, role := range c.Roles {
		if err := role.Validate(); err != nil {
			return err
		}
		if role.URL == "" {
			return quemequem.Errorf(quemequem.EINVALID, "role %q: url required", role.ID)
		}
		if seen[role.ID] {
			return quemequem.Errorf(quemequem.EINVALID, "duplicate role %q", role.ID)
		}
		seen[role.ID] = true
	}
	return nil
}

// Find returns the role with the given ID.
// Returns ENOTFOUND if it does not exist.
func (c *Catalog) Find(id string) (*quemequem.Role, error) {
	for _, role := range c.Roles {
		if role.ID == id {
			return role, nil
		}
	}
	return nil, quemequem.Errorf(quemequem.ENOTFOUND, "role not found: %s", id)
}

// Select returns the roles with the given IDs in the order given, or every
// role when ids is empty.
func (c *Catalog) Select(ids []string) ([]*quemequem.Role, error) {
	if len(ids) == 0 {
		return c.Roles, nil
	}
	roles := make([]*quemequem.Role, 0, len(ids))
	for _, id := range ids {
		role, err := c.Find(id)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// IDs returns the role IDs in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.Roles))
	for i, role := range c.Roles {
		ids[i] = role.ID
	}
	return ids
}

// Env holds settings read from the process environment.
type Env struct {
	DB        string
	Out       string
	UserAgent string
	Timeout   time.Duration
}

// Environment variable names.
const (
	EnvDB        = "QUEMEQUEM_DB"
	EnvOut       = "QUEMEQUEM_OUT"
	EnvUserAgent = "QUEMEQUEM_USER_AGENT"
	EnvTimeout   = "QUEMEQUEM_TIMEOUT"
)

// LoadEnv reads settings from the environment after loading a .env file from
// the working directory when one exists. Unset variables keep their defaults.
func LoadEnv() (Env, error) {
	_ = godotenv.Load()

	env := Env{
		DB:        getEnv(EnvDB, "quemequem.db"),
		Out:       getEnv(EnvOut, "out"),
		UserAgent: getEnv(EnvUserAgent, ""),
	}
	if v := getEnv(EnvTimeout, ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Env{}, quemequem.Errorf(quemequem.EINVALID, "%s: invalid duration %q", EnvTimeout, v)
		}
		env.Timeout = d
	}
	return env, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
