// Package yaml provides a YAML parser implementation for the config package.
//
// Documents are loaded with a yamltag.Loader, so custom tags are resolved
// first. The selected section is then decoded into the target with
// github.com/go-viper/mapstructure/v2, using the `yaml` struct tags.
//
// Usage:
//
//	parser := yaml.NewParser(yaml.WithOrigin("config"))
//	var cfg Config
//	err := parser.Parse(data, &cfg, "api:permissions")
//
// Path navigation:
//   - Empty path "" -> entire document
//   - Single key "key" -> document["key"]
//   - Nested path "api:permissions" -> document["api"]["permissions"]
package yaml
