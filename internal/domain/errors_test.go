package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/papelaria/internal/domain"
)

func TestStorageError(t *testing.T) {
	cause := errors.New("conexión cerrada")
	err := domain.StorageError("insert sale", cause)

	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, domain.ErrTransient)
	assert.Contains(t, err.Error(), "insert sale")
}

func TestTransientError_TambienEsStorage(t *testing.T) {
	err := domain.TransientError("lock product", errors.New("lock timeout"))

	assert.ErrorIs(t, err, domain.ErrTransient)
	assert.ErrorIs(t, err, domain.ErrStorage)
}
