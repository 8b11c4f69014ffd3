package course_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/golftracker/internal/course"
)

const scorecardHTML = `<!DOCTYPE html>
<html>
<body>
<h1>Old Course Scorecard</h1>
<table>
  <tr><th>Hole</th><th>Yards</th><th>Par</th></tr>
  <tr><td>1</td><td>376</td><td>4</td></tr>
  <tr><td>2</td><td>453</td><td>4</td></tr>
  <tr><td>3</td><td>397</td><td>4</td></tr>
  <tr><td>4</td><td>480</td><td>5</td></tr>
  <tr><td>5</td><td>174</td><td>3</td></tr>
  <tr><td>Out</td><td>1880</td><td>20</td></tr>
</table>
</body>
</html>`

func TestParseHTML(t *testing.T) {
	pars, err := course.ParseHTML(strings.NewReader(scorecardHTML))
	require.NoError(t, err)

	// The "Out" summary row is skipped; the five hole rows survive.
	assert.Equal(t, map[int]int{1: 4, 2: 4, 3: 4, 4: 5, 5: 3}, pars)
}

func TestParseHTMLSkipsNonScorecardTables(t *testing.T) {
	html := `<html><body>
<table><tr><th>Name</th><th>Score</th></tr><tr><td>A</td><td>72</td></tr></table>
<table><tr><th>Hole</th><th>Par</th></tr><tr><td>1</td><td>3</td></tr></table>
</body></html>`

	pars, err := course.ParseHTML(strings.NewReader(html))
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 3}, pars)
}

func TestParseHTMLNoTable(t *testing.T) {
	_, err := course.ParseHTML(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	assert.Error(t, err)
}

func TestParseCSV(t *testing.T) {
	csv := "hole,par\n1,4\n2,3\n3,5\n"
	pars, err := course.ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 4, 2: 3, 3: 5}, pars)
}

func TestParseCSVWithoutHeader(t *testing.T) {
	pars, err := course.ParseCSV(strings.NewReader("1,4\n2,3\n"))
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 4, 2: 3}, pars)
}

func TestParseCSVEmpty(t *testing.T) {
	_, err := course.ParseCSV(strings.NewReader("hole,par\n"))
	assert.Error(t, err)
}
