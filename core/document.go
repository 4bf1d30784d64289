package core

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RawDoc is the canonical document shell: every aggregator-valued
// position in the tree, nested or root, takes this shape.
type RawDoc struct {
	Version string          `json:"version"`
	Type    string          `json:"type"`
	Data    json.RawMessage `json:"data"`
}

// Encode serializes c as a full {version,type,data} document.
func Encode(c Container) ([]byte, error) {
	doc, err := ToRawDoc(c)
	if err != nil {
		return nil, err
	}

	return json.Marshal(doc)
}

// ToRawDoc builds the {version,type,data} shell for c without the final
// marshal step. Collection and nesting primitives call this for every
// inner container they hold, so a Bin's ten sub-histograms or a Label's
// keyed aggregators each carry their own self-describing shell one level
// deeper than the document root.
func ToRawDoc(c Container) (RawDoc, error) {
	agg, err := c.ToAggregation()
	if err != nil {
		return RawDoc{}, err
	}

	data, err := json.Marshal(agg)
	if err != nil {
		return RawDoc{}, NewFormatError(c.TypeName(), err)
	}

	return RawDoc{Version: FormatVersion, Type: c.TypeName(), Data: data}, nil
}

// Decode parses raw as a RawDoc, checks version compatibility, and
// dispatches to reg for the concrete container.
func Decode(raw []byte, reg *Registry) (Container, error) {
	var doc RawDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, NewFormatError("", err)
	}

	return DecodeDoc(doc, reg)
}

// DecodeDoc dispatches an already-parsed RawDoc to reg.
func DecodeDoc(doc RawDoc, reg *Registry) (Container, error) {
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}

	f, ok := reg.Lookup(doc.Type)
	if !ok {
		return nil, NewFormatError(doc.Type, ErrUnknownType)
	}

	c, err := f.FromAggregation(doc.Data, reg)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// checkVersion enforces: reader.major >= doc.major, or (majors equal and)
// reader.minor >= doc.minor.
func checkVersion(docVersion string) error {
	readerMajor, readerMinor := splitVersion(FormatVersion)
	docMajor, docMinor := splitVersion(docVersion)

	if readerMajor > docMajor {
		return nil
	}
	if readerMajor == docMajor && readerMinor >= docMinor {
		return nil
	}

	return &VersionError{DocumentVersion: docVersion, ReaderVersion: FormatVersion}
}

func splitVersion(v string) (major, minor int) {
	parts := strings.SplitN(v, ".", 2)
	if len(parts) > 0 {
		major, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		minor, _ = strconv.Atoi(parts[1])
	}

	return major, minor
}
