package images

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPictureIsWhite(t *testing.T) {
	p, err := NewPicture(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Height())
	assert.Equal(t, 4, p.Width())
	for _, px := range p.pix {
		assert.Equal(t, White, px)
	}

	_, err = NewPicture(-1, 4)
	assert.True(t, errors.Is(err, ErrInvalidDimensions))
}

func TestPictureString(t *testing.T) {
	p := NewPictureFromGrid("beach.jpg", patternGrid(t, 480, 640))
	assert.Equal(t, "Picture, filename beach.jpg height 480 width 640", p.String())
}

func TestPictureCopyIsIndependent(t *testing.T) {
	p := NewPictureFromGrid("a.png", patternGrid(t, 2, 2))
	c := p.Copy()
	assert.Equal(t, p.Name, c.Name)

	c.Negate()
	assert.False(t, p.Equal(c.Grid))
}

func TestPictureScaleByHalf(t *testing.T) {
	p := NewPictureFromGrid("a.png", patternGrid(t, 6, 4))
	half := p.ScaleByHalf()
	assert.Equal(t, "a.png", half.Name)
	assert.Equal(t, 3, half.Height())
	assert.Equal(t, 2, half.Width())
	assert.Equal(t, p.at(4, 2), half.at(2, 1))
}
