package correoargentino

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/matzehuels/parceltrack/pkg/cache"
	"github.com/matzehuels/parceltrack/pkg/errors"
	"github.com/matzehuels/parceltrack/pkg/normalize"
	"github.com/matzehuels/parceltrack/pkg/tracking"
)

// notFoundSentinel is matched after accent folding and lower-casing.
const notFoundSentinel = "no se encontraron resultados"

// minCells is fecha, planta, historia. A fourth cell (detalle) is optional.
const minCells = 3

// Parse extracts events from a results page. A page carrying the
// "no se encontraron resultados" marker is NOT_FOUND whatever else it
// contains, and so is a page without any usable row.
func Parse(markup string) ([]tracking.Event, error) {
	return parse(markup, cache.SystemClock{})
}

func parse(markup string, clock cache.Clock) ([]tracking.Event, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnexpected, err, "correo argentino returned unreadable markup")
	}
	if strings.Contains(normalize.Fold(normalize.Collapse(doc.Text())), notFoundSentinel) {
		return nil, errors.New(errors.ErrCodeNotFound, "correo argentino found no results")
	}

	var events []tracking.Event
	rows(doc).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < minCells {
			return
		}
		cell := func(i int) string {
			html, _ := cells.Eq(i).Html()
			return normalize.Text(html)
		}
		desc := cell(2)
		if cells.Length() > minCells {
			switch detail := cell(3); {
			case detail == "" || detail == desc:
			case desc == "":
				desc = detail
			default:
				desc += " - " + detail
			}
		}
		if desc == "" {
			return
		}
		ts, estimated := normalize.Date(cell(0), clock)
		events = append(events, tracking.Event{
			Timestamp:   ts,
			Estimated:   estimated,
			Location:    cell(1),
			Description: desc,
		})
	})
	if len(events) == 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "correo argentino returned no events")
	}
	return events, nil
}

// rows picks the data rows of the results table: body rows of a
// table.table when present, otherwise every row of the page.
func rows(doc *goquery.Document) *goquery.Selection {
	if t := doc.Find("table.table").First(); t.Length() > 0 {
		if body := t.Find("tbody tr"); body.Length() > 0 {
			return body
		}
		return t.Find("tr")
	}
	return doc.Find("tr")
}
