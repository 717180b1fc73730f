package statvis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vdobler/statvis"
)

func TestDefaultOptionsValid(t *testing.T) {
	o := statvis.DefaultOptions()
	assert.NoError(t, o.Validate())
	assert.Equal(t, 2, o.NumDividers)
	assert.Equal(t, 10, o.GroupSize)
	assert.Equal(t, []string{"darkgreen", "darkorange", "darkred"}, o.ColorPalette)
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(o *statvis.Options)
		want   error
	}{
		{"negative dividers", func(o *statvis.Options) { o.NumDividers = -1 }, statvis.ErrInvalidParameter},
		{"zero group", func(o *statvis.Options) { o.GroupSize = 0 }, statvis.ErrInvalidParameter},
		{"negative bins", func(o *statvis.Options) { o.BinCount = -3 }, statvis.ErrInvalidParameter},
		{"negative width", func(o *statvis.Options) { o.Width = -1 }, statvis.ErrInvalidParameter},
		{"negative padding", func(o *statvis.Options) { o.Padding = -1 }, statvis.ErrInvalidParameter},
		{"offset ratio", func(o *statvis.Options) { o.BarOffsetRatio = 1 }, statvis.ErrInvalidParameter},
		{"fences", func(o *statvis.Options) { o.Fences = "mean" }, statvis.ErrInvalidParameter},
		{"colour", func(o *statvis.Options) { o.ColorPalette = []string{"red", "nope"} }, statvis.ErrInvalidParameter},
		{"start count", func(o *statvis.Options) { o.StartIndices = []int{1} }, statvis.ErrInvalidDivider},
		{"start order", func(o *statvis.Options) { o.StartIndices = []int{3, 1} }, statvis.ErrInvalidDivider},
		{"negative start", func(o *statvis.Options) { o.StartIndices = []int{-1, 1} }, statvis.ErrInvalidDivider},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := statvis.DefaultOptions()
			tc.modify(&o)
			assert.ErrorIs(t, o.Validate(), tc.want)
		})
	}

	o := statvis.DefaultOptions()
	o.StartIndices = []int{2, 2}
	assert.NoError(t, o.Validate(), "equal starts are allowed")
}
