// Package config provides typed configuration loading on top of yamltag.
//
// The package uses an interface-based design with four extension points:
//   - Parser: deserializes raw data into config struct, with path navigation support
//   - DataFetcher: retrieves raw config data
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// # Path Navigation
//
// The Provider function accepts a path parameter that allows targeting a specific
// section within configuration files. Paths use colon (:) as the separator:
//
//	"api:permissions"           -> config["api"]["permissions"]
//	"database:connection"       -> config["database"]["connection"]
//	""                          -> entire document
//
// The YAML parser in config/parser/yaml loads the document through a
// yamltag.Loader first, so tags such as !include are resolved before the
// section is selected.
//
// # Example
//
//	type APIConfig struct {
//	    Timeout int    `yaml:"timeout"`
//	    BaseURL string `yaml:"base_url"`
//	}
//
//	fetcher, err := filefetcher.NewFetcher("config.yaml", yamltag.OSFileSystem())()
//	parser := yamlparser.NewParser(yamlparser.WithOrigin(fetcher.Origin()))
//	cfg, err := config.Provider(&APIConfig{}, "services:api")(parser, fetcher)
package config
