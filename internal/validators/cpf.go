package validators

import "strings"

// IsCPFValid valida o CPF pelos dois dígitos verificadores. Aceita o
// número com ou sem pontuação ("000.000.000-00").
func IsCPFValid(cpf string) bool {
	digits := make([]int, 0, 11)
	for _, r := range cpf {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '-' || r == ' ':
			// pontuação tolerada
		default:
			return false
		}
	}

	if len(digits) != 11 {
		return false
	}

	// CPFs com todos os dígitos iguais passam no cálculo, mas são inválidos.
	allEqual := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	for _, n := range []int{9, 10} {
		sum := 0
		for i := 0; i < n; i++ {
			sum += digits[i] * (n + 1 - i)
		}
		dv := (sum * 10) % 11
		if dv == 10 {
			dv = 0
		}
		if dv != digits[n] {
			return false
		}
	}

	return true
}

// FormatCPF normaliza para o formato com pontuação, sem validar.
func FormatCPF(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	raw := b.String()
	if len(raw) != 11 {
		return cpf
	}
	return raw[0:3] + "." + raw[3:6] + "." + raw[6:9] + "-" + raw[9:11]
}
