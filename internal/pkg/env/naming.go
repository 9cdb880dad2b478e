package env

import (
	"fmt"
	"strings"
)

const Prefix = "BATCHMV_"

// NamingConvention maps flag names to ENV variable names.
type NamingConvention struct{}

func NewNamingConvention() *NamingConvention {
	return &NamingConvention{}
}

// Replace converts flag name to ENV variable name,
// for example "working-dir" -> "BATCHMV_WORKING_DIR".
func (*NamingConvention) Replace(flagName string) string {
	if len(flagName) == 0 {
		panic(fmt.Errorf("flag name cannot be empty"))
	}

	return Prefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// Files lists the supported dotenv files, the first match wins.
func Files() []string {
	return []string{
		".env.local",
		".env",
	}
}
