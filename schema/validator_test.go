package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorAcceptsMinimalConfig(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(map[string]interface{}{
		"mode": "development",
	}))
}

func TestValidatorAcceptsFullLoggingBlock(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(map[string]interface{}{
		"mode": "production",
		"logging": map[string]interface{}{
			"level":         "debug",
			"report_caller": true,
			"file": map[string]interface{}{
				"enabled": true,
				"path":    "~/.flux/flux.log",
			},
			"format": map[string]interface{}{
				"preset":               "json",
				"structured_to_stderr": "always",
			},
		},
	}))
}

func TestValidatorAcceptsUnknownTopLevelKeys(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(map[string]interface{}{
		"mode":      "development",
		"telemetry": map[string]interface{}{"enabled": false},
	}))
}

func TestValidatorRejectsBadMode(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	err = v.Validate(map[string]interface{}{"mode": "staging"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mode")
}

func TestValidatorRejectsBadLoggingLevel(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	err = v.Validate(map[string]interface{}{
		"logging": map[string]interface{}{"level": "verbose"},
	})
	require.Error(t, err)
}

func TestValidatorRejectsWrongType(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	err = v.Validate(map[string]interface{}{
		"logging": map[string]interface{}{"report_caller": "yes"},
	})
	require.Error(t, err)
}
