package docbr

// PhoneDigits cantidad de dígitos de un teléfono válido (DDD + número móvil).
const PhoneDigits = 11

// NormalizePhone elimina todo carácter que no sea dígito ASCII.
func NormalizePhone(phone string) string {
	out := make([]byte, 0, len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

// ValidatePhone indica si el teléfono, sin puntuación, tiene exactamente 11 dígitos.
func ValidatePhone(phone string) bool {
	return len(NormalizePhone(phone)) == PhoneDigits
}
