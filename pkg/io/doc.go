// Package io reads charts from JSON and writes rendered sheets to disk.
//
// # JSON Format
//
// A chart has a metadata object and a notes array:
//
//	{
//	  "metadata": {"title": "Song", "difficulty": "expert", "level": 26, "combo": 901, "bpm": 180},
//	  "notes": [
//	    {"type": "tap", "track_idx": 3, "is_skill": true,
//	     "time": {"bar_idx": 1, "beat_idx": 0, "denominator": 4}},
//	    {"type": "slide", "track_idx": 1, "time": {"bar_idx": 2, "beat_idx": 0, "denominator": 1},
//	     "ticks": [
//	       {"track_idx": 1, "time": {"bar_idx": 2, "beat_idx": 0, "denominator": 1}},
//	       {"track_idx": 4, "time": {"bar_idx": 2, "beat_idx": 1, "denominator": 2}}
//	     ]},
//	    {"type": "special", "command": "bgm", "time": {"bar_idx": 1, "beat_idx": 0, "denominator": 1}}
//	  ]
//	}
//
// # Note Fields
//
//   - type: "tap", "slide" or "special"; anything else is skipped
//   - track_idx: lane 0..7
//   - time: bar_idx is 1-based, beat_idx/denominator is the position in the bar
//   - is_flick, is_skill: optional flags
//   - ticks: slide waypoints in increasing time; the slide takes the time
//     of its first tick when time is omitted
//   - command: the instruction carried by a special note
//
// # Import
//
// Use [ImportJSON] to read a chart file, or [ReadJSON] to read from any
// io.Reader:
//
//	doc, err := io.ImportJSON("chart.json", logger)
//	if err != nil {
//	    return err
//	}
//
// Individual notes that cannot be placed (a bad denominator, a lane out of
// range, an empty slide, ticks out of order) are reported through the
// logger and dropped; the rest of the chart still renders.
//
// # Export
//
// [ExportPNG] encodes and writes a rendered sheet. [WriteFile] writes
// already-encoded bytes. Both write to a temporary file and rename it into
// place, so the destination is never left half-written.
package io
