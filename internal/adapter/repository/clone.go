package repository

import (
	"encoding/json"

	apperrors "github.com/johnquangdev/mom-ai/errors"
)

// cloneRecord deep-copies a stored record through its JSON form, which is
// already the record's persistence shape. Update callbacks run against the
// clone; the stored record is never written after publication, so readers
// may marshal it outside the store lock.
func cloneRecord[T any](src *T) (*T, error) {
	raw, err := json.Marshal(src)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	dst := new(T)
	if err := json.Unmarshal(raw, dst); err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	return dst, nil
}
