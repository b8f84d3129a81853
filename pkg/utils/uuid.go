package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// idAlphabet restringe os IDs a caracteres seguros para URLs e planilhas
const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const idLength = 6

// GenerateID gera o identificador curto usado como chave primária das entidades
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
