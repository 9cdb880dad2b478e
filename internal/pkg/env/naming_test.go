package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamingConvention(t *testing.T) {
	t.Parallel()
	naming := NewNamingConvention()
	assert.Equal(t, "BATCHMV_VERBOSE", naming.Replace("verbose"))
	assert.Equal(t, "BATCHMV_WORKING_DIR", naming.Replace("working-dir"))
	assert.Equal(t, "BATCHMV_LOG_FILE", naming.Replace("log-file"))
}

func TestNamingConventionEmptyFlag(t *testing.T) {
	t.Parallel()
	naming := NewNamingConvention()
	assert.PanicsWithError(t, "flag name cannot be empty", func() {
		naming.Replace("")
	})
}
