// Package docbr valida documentos de contacto e identificación de clientes:
// CPF (identificador nacional de 11 dígitos) y teléfono.
package docbr

import "fmt"

// CPFLength longitud exacta de un CPF sin puntuación.
const CPFLength = 11

// ValidateCPF indica si id es un CPF válido: exactamente 11 dígitos ASCII, no todos iguales,
// y los dos dígitos verificadores (posiciones 10 y 11) coinciden con el cálculo módulo 11.
// No acepta puntos ni guiones; el llamador debe enviar solo dígitos.
func ValidateCPF(id string) bool {
	if len(id) != CPFLength || !onlyASCIIDigits(id) {
		return false
	}
	if allSame(id) {
		return false
	}
	first, second := checkDigits(id[:9])
	return id[9] == first && id[10] == second
}

// ComputeCPFCheckDigits calcula los dos dígitos verificadores para una base de 9 dígitos.
func ComputeCPFCheckDigits(base string) (string, error) {
	if len(base) != 9 || !onlyASCIIDigits(base) {
		return "", fmt.Errorf("docbr: la base del CPF debe tener 9 dígitos, se recibieron %q", base)
	}
	first, second := checkDigits(base)
	return string([]byte{first, second}), nil
}

// checkDigits pesos 10..2 sobre los 9 dígitos para el primero; 11..2 sobre los 10 para el segundo.
func checkDigits(base string) (byte, byte) {
	var sum int
	for i := 0; i < 9; i++ {
		sum += int(base[i]-'0') * (10 - i)
	}
	first := mod11Digit(sum)

	sum = 0
	for i := 0; i < 9; i++ {
		sum += int(base[i]-'0') * (11 - i)
	}
	sum += int(first-'0') * 2
	return first, mod11Digit(sum)
}

func mod11Digit(sum int) byte {
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func onlyASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
