package association

import (
	"bytes"
	"encoding/json"

	apperrors "github.com/gcbaptista/smart-selector/internal/errors"
	"github.com/gcbaptista/smart-selector/model"
)

var jsonNull = []byte("null")

// ParseRequest decodes and validates an association payload.
//
// A request is rejected with a *errors.FormatError when the payload is not a
// JSON object, when "strings" or "files" is missing, null or not a list of
// strings, or when "strings" is empty. "files" may be empty.
func ParseRequest(payload []byte) (model.AssociationRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil || fields == nil {
		return model.AssociationRequest{}, apperrors.NewFormatError("", "payload must be a JSON object")
	}

	queries, err := stringList(fields, "strings")
	if err != nil {
		return model.AssociationRequest{}, err
	}
	if len(queries) == 0 {
		return model.AssociationRequest{}, apperrors.NewFormatError("strings", "must be a non-empty list")
	}

	files, err := stringList(fields, "files")
	if err != nil {
		return model.AssociationRequest{}, err
	}

	return model.AssociationRequest{Strings: queries, Files: files}, nil
}

// ParseKeywordsRequest decodes a payload carrying only a "files" list.
func ParseKeywordsRequest(payload []byte) (model.KeywordsRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil || fields == nil {
		return model.KeywordsRequest{}, apperrors.NewFormatError("", "payload must be a JSON object")
	}

	files, err := stringList(fields, "files")
	if err != nil {
		return model.KeywordsRequest{}, err
	}
	return model.KeywordsRequest{Files: files}, nil
}

// stringList extracts a required, non-null list of strings.
func stringList(fields map[string]json.RawMessage, name string) ([]string, error) {
	raw, ok := fields[name]
	if !ok {
		return nil, apperrors.NewFormatError(name, "field is required")
	}
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil, apperrors.NewFormatError(name, "cannot be null")
	}

	var items []interface{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, apperrors.NewFormatError(name, "must be a list")
	}

	values := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, apperrors.NewFormatError(name, "must contain only strings")
		}
		values = append(values, s)
	}
	return values, nil
}
