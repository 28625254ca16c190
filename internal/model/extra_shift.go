package model

import (
	"fmt"
	"strings"
)

// ExtraShiftKey identifies a technician's volunteered Saturday.
type ExtraShiftKey struct {
	TechnicianID string
	Date         Date
}

// String renders the persisted form technicianId_YYYY-MM-DD.
func (k ExtraShiftKey) String() string {
	return k.TechnicianID + "_" + k.Date.String()
}

func ParseExtraShiftKey(s string) (ExtraShiftKey, error) {
	i := strings.LastIndexByte(s, '_')
	if i <= 0 {
		return ExtraShiftKey{}, fmt.Errorf("parse extra shift key %q: missing separator", s)
	}
	d, err := ParseDate(s[i+1:])
	if err != nil {
		return ExtraShiftKey{}, fmt.Errorf("parse extra shift key %q: %w", s, err)
	}
	return ExtraShiftKey{TechnicianID: s[:i], Date: d}, nil
}

// ExtraShifts is the set of flagged (technician, date) pairs. A missing key
// means no extra shift.
type ExtraShifts map[ExtraShiftKey]bool

func (e ExtraShifts) Has(technicianID string, d Date) bool {
	return e[ExtraShiftKey{TechnicianID: technicianID, Date: d}]
}
