package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
trucks:
  - id: tata-ace
    name: Tata Ace
    length: 2.2
    width: 1.5
    height: 1.8
    maxWeight: 750
    costPerKm: 8
    category: mini
  - id: eicher-14ft
    length: 4.3
    width: 2.0
    height: 2.0
    maxWeight: 4000
    costPerKm: 14
    category: lcv
`

func TestParse(t *testing.T) {
	trucks, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, trucks, 2)
	assert.Equal(t, "tata-ace", trucks[0].ID)
	assert.Equal(t, 750.0, trucks[0].MaxWeight)
	assert.InDelta(t, 5.94, trucks[0].Volume(), 1e-9)
}

func TestParseRejectsDuplicateID(t *testing.T) {
	doc := `
trucks:
  - {id: x, length: 1, width: 1, height: 1, maxWeight: 10, costPerKm: 1}
  - {id: x, length: 2, width: 2, height: 2, maxWeight: 20, costPerKm: 2}
`
	_, err := Parse([]byte(doc))
	assert.ErrorContains(t, err, "duplicate truck id")
}

func TestParseRejectsBadDims(t *testing.T) {
	doc := `
trucks:
  - {id: x, length: 0, width: 1, height: 1, maxWeight: 10, costPerKm: 1}
`
	_, err := Parse([]byte(doc))
	assert.Error(t, err)
}

func TestParseRejectsEmpty(t *testing.T) {
	_, err := Parse([]byte("trucks: []"))
	assert.ErrorContains(t, err, "no trucks")
}
