package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitListField(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "Chill", []string{"Chill"}},
		{"multiple", "Chill;Active;Văn hóa", []string{"Chill", "Active", "Văn hóa"}},
		{"whitespace trimmed", " Chill ; Active ", []string{"Chill", "Active"}},
		{"empty entries dropped", "Chill;;;Active;", []string{"Chill", "Active"}},
		{"only separators", ";; ; ", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, splitListField(tc.field))
		})
	}
}
