package datafields

import (
	"github.com/Station-Manager/errors"
	"github.com/goccy/go-json"
)

// Generic helpers as top-level functions (methods cannot have type parameters yet)

// ContentFrom converts a loosely typed record (for example a decoded web service
// response map) into a Content through a JSON round trip.
func ContentFrom(record any) (*Content, error) {
	const op errors.Op = "datafields.ContentFrom"
	var c Content
	if err := convert(record, &c); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return &c, nil
}

// DecodeOffline decodes the value queued for subfield into T. ok is false when
// nothing was queued for it.
func DecodeOffline[T any](oc OfflineContent, subfield string) (value T, ok bool, err error) {
	const op errors.Op = "datafields.DecodeOffline"
	raw := oc[subfield]
	if len(raw) == 0 {
		return value, false, nil
	}
	if err = json.Unmarshal(raw, &value); err != nil {
		return value, false, errors.New(op).Err(err)
	}
	return value, true, nil
}
