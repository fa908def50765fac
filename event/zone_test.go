package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidZone(t *testing.T) {
	assert.True(t, ValidZone("America/New_York"))
	assert.True(t, ValidZone("UTC"))
	assert.False(t, ValidZone(""))
	assert.False(t, ValidZone("Local"))
	assert.False(t, ValidZone("Mars/Olympus_Mons"))
	assert.False(t, ValidZone("EST5EDT/Bogus"))
}
