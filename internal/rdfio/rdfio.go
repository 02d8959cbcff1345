package rdfio

import (
	"io"
	"strings"

	rdf "github.com/geoknoesis/rdf-go/rdf"
	"github.com/pkg/errors"
)

// MediaTypeFormat maps an RDF media type (or CLI shorthand) to the codec
// format. Supported: application/n-quads, application/n-triples,
// text/turtle, application/trig.
func MediaTypeFormat(mediaType string) (rdf.Format, error) {
	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "nquads", "n-quads", "application/n-quads", "text/x-nquads":
		return rdf.FormatNQuads, nil
	case "ntriples", "n-triples", "application/n-triples":
		return rdf.FormatNTriples, nil
	case "turtle", "ttl", "text/turtle":
		return rdf.FormatTurtle, nil
	case "trig", "application/trig":
		return rdf.FormatTriG, nil
	default:
		return rdf.FormatNQuads, errors.Errorf("unsupported RDF format %q", mediaType)
	}
}

// Convert streams every quad from r (in the from serialization) to w (in
// the to serialization).
func Convert(r io.Reader, w io.Writer, from, to rdf.Format) error {
	dec, err := rdf.NewReader(r, from)
	if err != nil {
		return errors.Wrap(err, "failed to create RDF decoder")
	}
	defer func() {
		_ = dec.Close()
	}()

	enc, err := rdf.NewWriter(w, to)
	if err != nil {
		return errors.Wrap(err, "failed to create RDF encoder")
	}

	for {
		quad, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "failed to parse RDF input")
		}
		if err := enc.Write(quad); err != nil {
			return errors.Wrap(err, "failed to serialize RDF output")
		}
	}

	return errors.Wrap(enc.Close(), "failed to finish RDF output")
}

// ConvertString is Convert over in-memory strings, which is how the
// processor layer uses it: the engine produces N-Quads as a string and the
// CLI re-serializes the whole dataset at once.
func ConvertString(input string, from, to rdf.Format) (string, error) {
	if from == to {
		return input, nil
	}
	var sb strings.Builder
	if err := Convert(strings.NewReader(input), &sb, from, to); err != nil {
		return "", err
	}
	return sb.String(), nil
}
