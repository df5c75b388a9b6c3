package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***@example.com", MaskEmail("asha@example.com"))
	assert.Equal(t, "******", MaskEmail("nope.x"))
	assert.Equal(t, "********", MaskEmail("@example"))
}

func TestSetLogger(t *testing.T) {
	nop := zap.NewNop().Sugar()
	SetLogger(nop)
	assert.Same(t, nop, GetLogger())
}
