package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/parceltrack/pkg/errors"
	"github.com/matzehuels/parceltrack/pkg/normalize"
	"github.com/matzehuels/parceltrack/pkg/tracking"
)

// headerRow is the row index lipgloss tables pass to StyleFunc for headers.
const headerRow = -1

// trackResult is the outcome for one tracking number.
type trackResult struct {
	Carrier tracking.Carrier
	Number  string
	Record  *tracking.Record
	Err     error
}

// jsonResult is the --json shape of a trackResult.
type jsonResult struct {
	Number string           `json:"number"`
	Record *tracking.Record `json:"record,omitempty"`
	Error  *jsonError       `json:"error,omitempty"`
}

type jsonError struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// writeJSON prints results as an indented JSON array.
func writeJSON(w io.Writer, results []trackResult) error {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		out[i] = jsonResult{Number: r.Number, Record: r.Record}
		if r.Err != nil {
			out[i].Error = &jsonError{Code: errorCode(r.Err), Message: errors.UserMessage(r.Err)}
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// =============================================================================
// Record Rendering
// =============================================================================

func statusBadge(s tracking.Status) string {
	return statusStyle(s).Render(strings.ReplaceAll(string(s), "_", " "))
}

// renderResult prints one record or its failure.
func renderResult(w io.Writer, r trackResult) {
	if r.Err != nil {
		printError(w, "%s %s", StyleTitle.Render(string(r.Carrier)), StyleValue.Render(r.Number))
		printDetail(w, "%s: %s", errorCode(r.Err), errors.UserMessage(r.Err))
		return
	}
	renderRecord(w, r.Record)
}

func errorCode(err error) errors.Code {
	if code := errors.GetCode(err); code != "" {
		return code
	}
	return errors.ErrCodeUnexpected
}

// renderRecord prints the header, details and the event table.
func renderRecord(w io.Writer, rec *tracking.Record) {
	fmt.Fprintln(w, StyleTitle.Render(string(rec.Carrier))+" "+StyleValue.Render(rec.TrackingNumber)+"  "+statusBadge(rec.Status))
	printKeyValue(w, "Status", rec.StatusLabel)
	if rec.LastUpdated != nil {
		printKeyValue(w, "Updated", normalize.FormatLocal(*rec.LastUpdated))
	}
	if rec.ETA != nil {
		printKeyValue(w, "ETA", normalize.FormatLocal(*rec.ETA))
	}
	if d := rec.Details; !d.Empty() {
		printKeyValue(w, "Service", d.Service)
		if d.Pieces != nil {
			printKeyValue(w, "Pieces", strconv.Itoa(*d.Pieces))
		}
		printKeyValue(w, "Weight", d.Weight)
		printKeyValue(w, "Origin", d.Origin)
		printKeyValue(w, "Destination", d.Destination)
		printKeyValue(w, "Signed by", d.Signee)
	}

	if len(rec.Events) == 0 {
		printDetail(w, "no events")
		return
	}
	fmt.Fprintln(w, eventTable(rec.Events))

	for _, e := range rec.Events {
		if e.Estimated {
			printDetail(w, "%s date not reported by the carrier", iconPending)
			break
		}
	}
}

// eventTable renders events newest first, as stored.
func eventTable(events []tracking.Event) string {
	rows := make([][]string, len(events))
	for i, e := range events {
		date := normalize.FormatLocal(e.Timestamp)
		if e.Estimated {
			date = iconPending
		}
		rows[i] = []string{date, e.Location, e.Description}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Date", "Location", "Event").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == headerRow:
				return headerStyle.Padding(0, 1)
			case row == 0:
				return base.Inherit(statusStyle(events[0].Stage))
			case col == 0:
				return base.Foreground(colorGray)
			}
			return base.Foreground(colorWhite)
		})
	return t.Render()
}

// renderCarriers prints the carrier catalogue.
func renderCarriers(w io.Writer, infos []tracking.CarrierInfo) {
	rows := make([][]string, len(infos))
	for i, info := range infos {
		mark := iconError
		if info.Implemented {
			mark = iconSuccess
		}
		rows[i] = []string{string(info.ID), mark, string(info.Strategy)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Carrier", "Ready", "Strategy").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return headerStyle.Padding(0, 1)
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if !infos[row].Implemented {
				return base.Foreground(colorDim)
			}
			if col == 1 {
				return base.Foreground(colorGreen)
			}
			return base.Foreground(colorWhite)
		})
	fmt.Fprintln(w, t.Render())
}
