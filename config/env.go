package config

import (
	"os"
	"regexp"
)

// envVarPattern matches `${NAME}` and `${NAME:default}` references in a
// config file, so secrets like the symmetric key can be kept out of the
// file itself.
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(?::([^}]*))?\}`)

// expandEnv replaces every `${NAME}`/`${NAME:default}` reference in s with
// the named environment variable's value, falling back to the given
// default (or the empty string if no default is given) when the variable
// is unset.
func expandEnv(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, def := groups[1], groups[2]
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return def
	})
}
