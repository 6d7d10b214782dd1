package config

import (
	"os"
	"regexp"
	"strings"
)

// envVarRegex matches ${VAR} and ${VAR:-fallback}.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content []byte) []byte {
	return envVarRegex.ReplaceAllFunc(content, func(match []byte) []byte {
		expr := string(envVarRegex.FindSubmatch(match)[1])
		name, fallback, hasFallback := strings.Cut(expr, ":-")
		value, exists := os.LookupEnv(name)
		switch {
		case exists && (value != "" || !hasFallback):
			return []byte(value)
		case hasFallback:
			return []byte(fallback)
		default:
			return match
		}
	})
}
