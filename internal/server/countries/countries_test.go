package countries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll_FixedAndOrdered(t *testing.T) {
	got := All()
	assert.Len(t, got, 5)
	assert.Equal(t, Country{Code: "PH", Name: "Philippines"}, got[0])
	assert.Equal(t, Country{Code: "FR", Name: "France"}, got[4])
}
