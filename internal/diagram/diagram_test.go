package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Girder/internal/statics"
)

func sampleProfile(t *testing.T) statics.ForceProfile {
	t.Helper()
	loads := []statics.Load{statics.PointLoad{Magnitude: 10, Position: 5}}
	profile, err := statics.Sample(loads, 5, 10, 200)
	require.NoError(t, err)
	return profile
}

func TestRenderProfilePNG(t *testing.T) {
	profile := sampleProfile(t)

	for _, kind := range []Kind{Shear, Moment} {
		img, err := RenderProfile(profile, kind)
		require.NoError(t, err)
		require.NotEmpty(t, img)
		assert.Equal(t, "\x89PNG", string(img[:4]), "expected PNG magic bytes")
	}
}

func TestRenderProfileEmpty(t *testing.T) {
	_, err := RenderProfile(statics.ForceProfile{}, Shear)
	assert.ErrorIs(t, err, statics.ErrInvalidModel)
}

func TestSketch(t *testing.T) {
	profile := sampleProfile(t)

	out := Sketch(profile, Moment, 10)
	assert.True(t, strings.Contains(out, "Bending Moment Diagram"))
	assert.NotEmpty(t, strings.TrimSpace(out))
}
