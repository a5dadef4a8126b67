package synerr_test

import (
	"testing"

	"github.com/katalvlaran/revlogic/synerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlwaysReturnsViolation(t *testing.T) {
	err := synerr.New("pkg.Op", "something broke")
	require.Error(t, err)

	var v *synerr.Violation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "pkg.Op", v.Op)
	assert.Equal(t, "something broke", v.Reason)
	assert.Contains(t, err.Error(), "pkg.Op")
	assert.Contains(t, err.Error(), "something broke")
}

func TestNewIfStrict(t *testing.T) {
	orig := synerr.StrictMode
	defer func() { synerr.StrictMode = orig }()

	synerr.StrictMode = true
	assert.Error(t, synerr.NewIfStrict("pkg.Op", "reason"))

	synerr.StrictMode = false
	assert.NoError(t, synerr.NewIfStrict("pkg.Op", "reason"))
}
