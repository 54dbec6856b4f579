package domain

import "errors"

// Errores de dominio (sin dependencias externas). Se envuelven con fmt.Errorf("%w: ...")
// y se comparan con errors.Is.
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrNoMatch           = errors.New("ningún producto coincide con la búsqueda")
	ErrStorage           = errors.New("falla del almacenamiento")
	// ErrTransient bloqueo no obtenido a tiempo, conflicto de serialización o deadlock.
	// Siempre se entrega junto a ErrStorage; el llamador puede reintentar.
	ErrTransient = errors.New("falla transitoria del almacenamiento")
)

// StorageError envuelve err como ErrStorage conservando la causa para errors.Is/As.
func StorageError(op string, err error) error {
	return &storageError{op: op, err: err}
}

// TransientError envuelve err como ErrTransient (y ErrStorage).
func TransientError(op string, err error) error {
	return &storageError{op: op, err: err, transient: true}
}

type storageError struct {
	op        string
	err       error
	transient bool
}

func (e *storageError) Error() string {
	if e.transient {
		return e.op + ": " + ErrTransient.Error() + ": " + e.err.Error()
	}
	return e.op + ": " + ErrStorage.Error() + ": " + e.err.Error()
}

func (e *storageError) Unwrap() []error {
	if e.transient {
		return []error{ErrTransient, ErrStorage, e.err}
	}
	return []error{ErrStorage, e.err}
}
