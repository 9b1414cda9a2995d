package utils

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorKind adalah klasifikasi error dari store. Presentasi pesan tidak
// lagi bergantung pada string internal driver.
type ErrorKind string

const (
	ErrKindNotFound    ErrorKind = "not_found"
	ErrKindConflict    ErrorKind = "conflict"
	ErrKindValidation  ErrorKind = "validation"
	ErrKindUnavailable ErrorKind = "unavailable"
	ErrKindInternal    ErrorKind = "internal"
)

// ClassifyStoreError memetakan error gorm/driver ke kind + pesan ramah.
// Pesan mentah tetap dicatat oleh caller lewat ErrorLogger, bukan
// dikirim ke client.
func ClassifyStoreError(err error) (ErrorKind, string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrKindNotFound, "Data tidak ditemukan"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrKindConflict, "Data dengan nilai yang sama sudah ada"
	case errors.Is(err, gorm.ErrInvalidData), errors.Is(err, gorm.ErrInvalidField):
		return ErrKindValidation, "Data yang dikirim tidak valid"
	}

	// Fallback pattern untuk driver yang tidak membungkus sentinel gorm
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint"):
		return ErrKindConflict, "Data dengan nilai yang sama sudah ada"
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "timeout"):
		return ErrKindUnavailable, "Store sedang tidak dapat dihubungi, coba lagi"
	}

	return ErrKindInternal, "Terjadi kesalahan internal, silakan coba lagi"
}
