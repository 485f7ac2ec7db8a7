package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/picturelab/images"
)

func TestStepListSet(t *testing.T) {
	var steps stepList
	require.NoError(t, steps.Set("grayscale"))
	require.NoError(t, steps.Set("blur"))
	assert.Equal(t, stepList{{Name: "grayscale"}, {Name: "blur"}}, steps)
	assert.Equal(t, "grayscale,blur", steps.String())

	err := steps.Set("sharpen")
	assert.ErrorContains(t, err, `unknown operation "sharpen"`)
	assert.Len(t, steps, 2)
}

func TestRegionFlagSet(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    images.Region
		wantErr string
	}{
		{name: "plain", value: "27,96,13,275", want: images.Region{StartRow: 27, EndRow: 96, StartCol: 13, EndCol: 275}},
		{name: "spaces", value: " 1, 2 ,3 , 4", want: images.Region{StartRow: 1, EndRow: 2, StartCol: 3, EndCol: 4}},
		{name: "too few parts", value: "1,2,3", wantErr: "want startRow,endRow,startCol,endCol"},
		{name: "too many parts", value: "1,2,3,4,5", wantErr: "want startRow,endRow,startCol,endCol"},
		{name: "not a number", value: "1,two,3,4", wantErr: `region "1,two,3,4"`},
		{name: "empty", value: "", wantErr: "want startRow,endRow,startCol,endCol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r regionFlag
			err := r.Set(tt.value)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.False(t, r.set)
				assert.Equal(t, "", r.String())
				return
			}
			require.NoError(t, err)
			assert.True(t, r.set)
			assert.Equal(t, tt.want, r.region)
		})
	}
}

func TestRegionFlagString(t *testing.T) {
	var r regionFlag
	require.NoError(t, r.Set("0,9,10,19"))
	assert.Equal(t, "0,9,10,19", r.String())
}

func TestRequireFlags(t *testing.T) {
	assert.NoError(t, requireFlags("in", "a.jpg", "out", "b.png"))
	assert.EqualError(t, requireFlags("in", "a.jpg", "out", ""), "-out is required")
}
