package io

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scoresheet/pkg/errors"
	"github.com/matzehuels/scoresheet/pkg/score"
	"github.com/matzehuels/scoresheet/pkg/timing"
)

type chart struct {
	MetaData score.MetaData   `json:"metadata"`
	Notes    []json.RawMessage `json:"notes"`
}

type note struct {
	Type    string         `json:"type"`
	IsFlick bool           `json:"is_flick"`
	IsSkill bool           `json:"is_skill"`
	Lane    int            `json:"track_idx"`
	Time    *timing.Timing `json:"time"`
	Ticks   []score.Tick   `json:"ticks"`
	Command string         `json:"command"`
}

// ReadJSON decodes a chart from r into a document.
//
// Bars in the file are 1-based and are shifted to 0-based here, for the
// note time and for every slide tick. A note that cannot be placed on a
// sheet is logged as a warning and skipped; so is a note of unknown type.
// Entries of the notes array that are not objects are ignored.
//
// ReadJSON fails only when the document itself cannot be decoded. A nil
// logger discards the warnings. ReadJSON does not close r.
func ReadJSON(r io.Reader, logger *log.Logger) (*score.Document, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var data chart
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode chart")
	}

	doc := &score.Document{MetaData: data.MetaData, Notes: make([]score.Note, 0, len(data.Notes))}
	for i, raw := range data.Notes {
		if !isObject(raw) {
			logger.Debug("ignoring non-object note entry", "index", i)
			continue
		}
		n, err := decodeNote(raw)
		if err != nil {
			logger.Warn("skipping note", "index", i, "code", errors.GetCode(err), "err", errors.UserMessage(err))
			continue
		}
		doc.Notes = append(doc.Notes, n)
	}
	return doc, nil
}

// ImportJSON reads the chart file at path. A missing file is reported as
// FILE_NOT_FOUND; everything else follows [ReadJSON].
func ImportJSON(path string, logger *log.Logger) (*score.Document, error) {
	data, err := ReadChart(path)
	if err != nil {
		return nil, err
	}
	doc, err := ReadJSON(bytes.NewReader(data), logger)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "read %s", path)
	}
	return doc, nil
}

// ReadChart returns the raw bytes of the chart file at path.
func ReadChart(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	return data, nil
}

func decodeNote(raw json.RawMessage) (score.Note, error) {
	var nd note
	if err := json.Unmarshal(raw, &nd); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidNote, err, "decode note")
	}

	ticks := make([]score.Tick, len(nd.Ticks))
	for i, tk := range nd.Ticks {
		ticks[i] = score.Tick{Lane: tk.Lane, Time: tk.Time.ShiftBars(-1)}
	}

	var at timing.Timing
	switch {
	case nd.Time != nil:
		at = nd.Time.ShiftBars(-1)
	case nd.Type == "slide" && len(ticks) > 0:
		at = ticks[0].Time
	case nd.Type == "tap" || nd.Type == "slide" || nd.Type == "special":
		return nil, errors.New(errors.ErrCodeInvalidNote, "%s note has no time", nd.Type)
	}
	attrs := score.Attrs{IsFlick: nd.IsFlick, IsSkill: nd.IsSkill, Lane: nd.Lane, Time: at}

	var n score.Note
	switch nd.Type {
	case "tap":
		n = &score.Tap{Attrs: attrs}
	case "slide":
		n = &score.Slide{Attrs: attrs, Ticks: ticks}
	case "special":
		n = &score.Special{Attrs: attrs, Command: nd.Command}
	default:
		return nil, errors.New(errors.ErrCodeUnknownNoteType, "unknown note type %q", nd.Type)
	}

	if err := n.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidNote, err, "%s note at %s", nd.Type, at)
	}
	return n, nil
}

func isObject(raw json.RawMessage) bool {
	b := bytes.TrimLeft(raw, " \t\r\n")
	return len(b) > 0 && b[0] == '{'
}
