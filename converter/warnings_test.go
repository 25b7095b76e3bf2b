package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarningAggregator_KeepsThreeExamples(t *testing.T) {
	w := NewWarningAggregator()
	for line := 1; line <= 5; line++ {
		w.addLine(WarningPhoneOverwritten, line)
	}
	w.Add(WarningAddressOverwritten, "line 9")

	all := w.All()
	require.Len(t, all, 2)

	assert.Equal(t, WarningAddressOverwritten, all[0].Type)
	assert.Equal(t, 1, all[0].Count)

	assert.Equal(t, WarningPhoneOverwritten, all[1].Type)
	assert.Equal(t, 5, all[1].Count)
	assert.Equal(t, []string{"line 1", "line 2", "line 3"}, all[1].Examples)
}

func TestWarning_Message(t *testing.T) {
	msg := Warning{Type: WarningAddressOverwritten, Count: 2, Examples: []string{"line 4", "line 9"}}.Message()
	assert.Equal(t,
		"Input has repeated address lines for the same record (2 occurrences). Keeping the last address. Examples: line 4, line 9",
		msg)
}

func TestWarningAggregator_Empty(t *testing.T) {
	w := NewWarningAggregator()
	assert.Equal(t, 0, w.Len())
	assert.Empty(t, w.All())
	assert.Equal(t, 0, w.Count(WarningEmptyName))
}
