package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWidths(t *testing.T) {
	tests := []struct {
		name      string
		fullWidth []bool
		want      []Width
	}{
		{
			name:      "all full",
			fullWidth: []bool{true, true, true, true, true, true},
			want:      []Width{WidthFull, WidthFull, WidthFull, WidthFull, WidthFull, WidthFull},
		},
		{
			name:      "six halves pair up",
			fullWidth: []bool{false, false, false, false, false, false},
			want:      []Width{WidthHalf, WidthHalf, WidthHalf, WidthHalf, WidthHalf, WidthHalf},
		},
		{
			name:      "odd half left alone",
			fullWidth: []bool{false, false, false},
			want:      []Width{WidthHalf, WidthHalf, WidthHalfAlone},
		},
		{
			name:      "halves split by full groups",
			fullWidth: []bool{true, false, true, false},
			want:      []Width{WidthFull, WidthHalfAlone, WidthFull, WidthHalfAlone},
		},
		{
			name:      "single half",
			fullWidth: []bool{false},
			want:      []Width{WidthHalfAlone},
		},
		{
			name:      "default board",
			fullWidth: []bool{true, false, false, true, true, true},
			want:      []Width{WidthFull, WidthHalf, WidthHalf, WidthFull, WidthFull, WidthFull},
		},
		{
			name:      "empty",
			fullWidth: []bool{},
			want:      []Width{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeWidths(tt.fullWidth))
		})
	}
}

func TestComputeLayout(t *testing.T) {
	groups := []Group{
		{ID: "backlog", FullWidth: true},
		{ID: "focus"},
		{ID: "inProgress"},
		{ID: "orgIntentions"},
		{ID: "delegated", FullWidth: true},
	}

	rows := ComputeLayout(groups)

	assert.Equal(t, []Row{
		{Groups: []int{0}, Width: WidthFull},
		{Groups: []int{1, 2}, Width: WidthHalf},
		{Groups: []int{3}, Width: WidthHalfAlone},
		{Groups: []int{4}, Width: WidthFull},
	}, rows)
}

func TestWidthString(t *testing.T) {
	assert.Equal(t, "full", WidthFull.String())
	assert.Equal(t, "half", WidthHalf.String())
	assert.Equal(t, "half-alone", WidthHalfAlone.String())
	assert.Equal(t, "unknown", Width(9).String())
}
