package course_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/golftracker/internal/course"
	"github.com/antigravity/golftracker/internal/models"
)

func TestStandardPars(t *testing.T) {
	nine := course.StandardPars(9)
	assert.Len(t, nine, 9)
	assert.Equal(t, 4, nine[1])
	assert.Equal(t, 3, nine[2])
	assert.Equal(t, 5, nine[3])

	eighteen := course.StandardPars(18)
	assert.Len(t, eighteen, 18)
	for hole, par := range eighteen {
		assert.Contains(t, []int{3, 4, 5}, par, "hole %d", hole)
	}
}

func TestAugustaNational(t *testing.T) {
	pars := course.AugustaNational()
	require.Len(t, pars, 18)
	assert.Equal(t, 4, pars[1])
	assert.Equal(t, 3, pars[12])

	total := 0
	for _, par := range pars {
		total += par
	}
	assert.Equal(t, 72, total)
}

func TestCatalogLayoutsBuildValidScorecards(t *testing.T) {
	for name, generate := range course.Catalog() {
		pars := generate()
		require.Len(t, pars, 18, "course %s", name)
		_, err := models.NewScorecard(uuid.New(), 18, pars)
		assert.NoError(t, err, "course %s", name)
	}
}

func TestParsFallsBackToStandard(t *testing.T) {
	named := course.Pars("St_Andrews", 9)
	assert.Len(t, named, 18)

	fallback := course.Pars("no-such-course", 9)
	assert.Equal(t, course.StandardPars(9), fallback)
}

func TestNamesSorted(t *testing.T) {
	names := course.Names()
	require.Len(t, names, 5)
	assert.Equal(t, []string{
		"Augusta_National",
		"Pebble_Beach",
		"St_Andrews",
		"Torrey_Pines_North",
		"Torrey_Pines_South",
	}, names)
}
