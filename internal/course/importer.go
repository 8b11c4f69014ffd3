package course

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/antigravity/golftracker/internal/golferr"
)

// ParseHTML extracts a hole→par layout from an HTML scorecard. It picks the
// first table whose header row has "hole" and "par" cells and reads those
// two columns; rows with non-numeric cells are skipped.
func ParseHTML(r io.Reader) (map[int]int, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &golferr.SerializationError{Path: "html", Err: err}
	}

	pars := make(map[int]int)
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		holeCol, parCol := -1, -1
		table.Find("th").Each(func(i int, th *goquery.Selection) {
			switch strings.ToLower(strings.TrimSpace(th.Text())) {
			case "hole":
				holeCol = i
			case "par":
				parCol = i
			}
		})
		if holeCol < 0 || parCol < 0 {
			return true // not a scorecard table, keep looking
		}

		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() <= holeCol || cells.Length() <= parCol {
				return
			}
			hole, holeErr := strconv.Atoi(strings.TrimSpace(cells.Eq(holeCol).Text()))
			par, parErr := strconv.Atoi(strings.TrimSpace(cells.Eq(parCol).Text()))
			if holeErr != nil || parErr != nil {
				return
			}
			pars[hole] = par
		})
		return false
	})

	if len(pars) == 0 {
		return nil, golferr.New("no scorecard table found in document")
	}
	return pars, nil
}

// ParseCSV reads "hole,par" records, optionally preceded by a header row.
func ParseCSV(r io.Reader) (map[int]int, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, &golferr.SerializationError{Path: "csv", Err: err}
	}

	pars := make(map[int]int)
	for i, record := range records {
		if len(record) < 2 {
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(record[0]), "hole") {
			continue
		}
		hole, holeErr := strconv.Atoi(strings.TrimSpace(record[0]))
		par, parErr := strconv.Atoi(strings.TrimSpace(record[1]))
		if holeErr != nil || parErr != nil {
			continue
		}
		pars[hole] = par
	}

	if len(pars) == 0 {
		return nil, golferr.New("no hole data in csv")
	}
	return pars, nil
}
