package services

import (
	"fmt"

	"gorm.io/gorm"

	apperrors "labourlink/errors"
)

// Labour IDs look like LAB-2026-0042. The sequence comes from an atomic
// per-year counter row so concurrent approvals never collide.
const labourIDSeqMax = 9999

// FormatLabourID renders a year and sequence as a labour ID
func FormatLabourID(year, seq int) string {
	return fmt.Sprintf("LAB-%d-%04d", year, seq)
}

// NextLabourID increments the year's counter and returns the new ID. Must
// run inside the caller's transaction so the counter moves together with
// the approval writes.
func NextLabourID(tx *gorm.DB, year int) (string, error) {
	var seq int
	err := tx.Raw(`
		INSERT INTO labour_id_counters (year, seq) VALUES (?, 1)
		ON CONFLICT (year) DO UPDATE SET seq = labour_id_counters.seq + 1
		RETURNING seq`, year).Scan(&seq).Error
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeDBError, "failed to advance labour ID counter", err)
	}
	if seq > labourIDSeqMax {
		return "", apperrors.NewAppError(apperrors.ErrCodeIDAssignmentConflict,
			fmt.Sprintf("labour ID sequence exhausted for %d", year), nil)
	}
	return FormatLabourID(year, seq), nil
}
