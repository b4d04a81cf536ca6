// Package cnpj valida os dígitos verificadores do CNPJ (módulo 11).
package cnpj

import (
	"fmt"
	"unicode"
)

// Pesos dos dois dígitos verificadores, aplicados da esquerda para a direita.
var (
	pesosDV1 = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	pesosDV2 = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Validar aceita o CNPJ com ou sem pontuação ("12.345.678/0001-95" ou
// "12345678000195") e confere os dois dígitos verificadores.
func Validar(cnpj string) error {
	digitos := extrairDigitos(cnpj)
	if len(digitos) != 14 {
		return fmt.Errorf("cnpj: esperados 14 dígitos, encontrados %d", len(digitos))
	}
	if todosIguais(digitos) {
		return fmt.Errorf("cnpj: sequência repetida")
	}

	dv1 := calcularDV(digitos[:12], pesosDV1[:])
	if digitos[12] != dv1 {
		return fmt.Errorf("cnpj: primeiro dígito verificador inválido: esperado %c, recebido %c", dv1, digitos[12])
	}
	dv2 := calcularDV(digitos[:13], pesosDV2[:])
	if digitos[13] != dv2 {
		return fmt.Errorf("cnpj: segundo dígito verificador inválido: esperado %c, recebido %c", dv2, digitos[13])
	}
	return nil
}

func calcularDV(base []byte, pesos []int) byte {
	var soma int
	for i, d := range base {
		soma += int(d-'0') * pesos[i]
	}
	resto := soma % 11
	if resto < 2 {
		return '0'
	}
	return byte('0' + (11 - resto))
}

func extrairDigitos(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}

func todosIguais(digitos []byte) bool {
	for _, d := range digitos[1:] {
		if d != digitos[0] {
			return false
		}
	}
	return true
}
