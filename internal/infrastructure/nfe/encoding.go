package nfe

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// paraUTF8 devolve o XML em UTF-8. Notas antigas circulam em ISO-8859-1
// (declarado no prólogo ou detectável por bytes inválidos em UTF-8).
func paraUTF8(xmlBruto []byte) ([]byte, error) {
	if declaraLatin1(xmlBruto) || !utf8.Valid(xmlBruto) {
		r := transform.NewReader(bytes.NewReader(xmlBruto), charmap.ISO8859_1.NewDecoder())
		convertido, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("converter ISO-8859-1: %w", err)
		}
		return convertido, nil
	}
	return xmlBruto, nil
}

// declaraLatin1 inspeciona o prólogo XML por encoding ISO-8859-1.
func declaraLatin1(xmlBruto []byte) bool {
	cabeca := xmlBruto
	if len(cabeca) > 128 {
		cabeca = cabeca[:128]
	}
	s := strings.ToLower(string(cabeca))
	return strings.Contains(s, "iso-8859-1") || strings.Contains(s, "latin-1")
}
