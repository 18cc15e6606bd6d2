package services

import (
	"errors"
	"fmt"
	"testing"

	"eatery/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStoreErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		notFound string
		kind     apperr.Kind
		message  string
	}{
		{"not found", gorm.ErrRecordNotFound, "order not found", apperr.KindNotFound, "order not found"},
		{"wrapped not found", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), "order not found", apperr.KindNotFound, "order not found"},
		{"not found without message", gorm.ErrRecordNotFound, "", apperr.KindNotFound, "record not found"},
		{"store down", errors.New("connection refused"), "order not found", apperr.KindPersistence, "record store unavailable"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := storeErr(testCase.err, testCase.notFound)

			var e *apperr.Error
			assert.ErrorAs(t, err, &e)
			assert.Equal(t, testCase.kind, e.Kind)
			assert.Equal(t, testCase.message, e.Message)
		})
	}
}
