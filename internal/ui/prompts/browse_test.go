package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrowseActions(t *testing.T) {
	tests := []struct {
		name string
		opts BrowseOptions
		want []BrowseAction
	}{
		{
			name: "everything available",
			opts: BrowseOptions{CanFilter: true, MoreAvailable: true, HasRows: true},
			want: []BrowseAction{ActionFilter, ActionViewMore, ActionApprove, ActionRefresh, ActionQuit},
		},
		{
			name: "feed exhausted",
			opts: BrowseOptions{CanFilter: true, HasRows: true},
			want: []BrowseAction{ActionFilter, ActionApprove, ActionRefresh, ActionQuit},
		},
		{
			name: "roster not loaded",
			opts: BrowseOptions{},
			want: []BrowseAction{ActionRefresh, ActionQuit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BrowseActions(tt.opts))
		})
	}
}
