// Package normalize turns carrier-specific raw values into the canonical
// pieces of a [tracking.Record].
//
// Everything here is deterministic and free of I/O so providers can share
// it after any extraction strategy:
//
//   - [ParseDate] and [Date] read the date formats Argentine carriers emit
//     and express them in the fixed ART offset (UTC-03:00).
//   - [Rules] maps a free-text status label to a [tracking.Status] with an
//     ordered, first-match-wins keyword list.
//   - [SortEvents] orders events newest-first, estimated timestamps last.
//   - [Finalize] applies all of the above to a record in one step.
//   - [Text], [Fold], [Canonical] and [MaskName] clean strings.
//
// [tracking.Record]: github.com/matzehuels/parceltrack/pkg/tracking.Record
// [tracking.Status]: github.com/matzehuels/parceltrack/pkg/tracking.Status
package normalize
