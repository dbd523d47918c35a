package services

import (
	"fmt"
	"strings"
)

// ValidationError menandai input yang tidak valid. Tidak di-retry.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// CyclicCompositionError dilempar saat komposisi resep membentuk siklus.
// Path berisi urutan nama resep pada jalur yang membentuk siklus.
type CyclicCompositionError struct {
	Path []string
}

func (e *CyclicCompositionError) Error() string {
	return fmt.Sprintf("komposisi resep membentuk siklus: %s", strings.Join(e.Path, " -> "))
}

// ReferentialIntegrityError dilempar saat sebuah baris menunjuk entitas
// yang tidak ada di snapshot. Tidak boleh di-skip diam-diam karena akan
// membuat total biaya lebih rendah dari seharusnya.
type ReferentialIntegrityError struct {
	Entity string
	ID     uint
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s dengan ID %d tidak ditemukan", e.Entity, e.ID)
}

// ConflictError dilempar saat entitas yang masih direferensikan entitas
// lain hendak dihapus.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}
