package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dangerclosesec/scholar/internal/model"
)

// Listed is a row in a listing. AddedAt is the association time for
// co-owned rows and the creation time otherwise.
type Listed[T any] struct {
	AddedAt time.Time
	Record  T
}

func (l Listed[T]) MarshalJSON() ([]byte, error) {
	return mergeJSON(l.Record, map[string]interface{}{"addedAt": l.AddedAt})
}

// Detail is a single record with its owner and co-owners. Teachers holds
// display names and leaves out admins; TeacherIDs holds every linked user.
type Detail[T any] struct {
	Record       T
	TeacherAdmin *model.UserSummary
	Teachers     []string
	TeacherIDs   []string
}

func (d Detail[T]) MarshalJSON() ([]byte, error) {
	extra := map[string]interface{}{"teacherAdmin": d.TeacherAdmin}
	if d.TeacherIDs != nil {
		extra["teachers"] = d.Teachers
		extra["teacherIds"] = d.TeacherIDs
	}
	return mergeJSON(d.Record, extra)
}

// mergeJSON encodes record as an object and adds extra keys to it.
func mergeJSON(record interface{}, extra map[string]interface{}) ([]byte, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("record is not an object: %w", err)
	}
	for k, v := range extra {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", k, err)
		}
		fields[k] = b
	}
	return json.Marshal(fields)
}
