package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID produz o identificador curto de 6 caracteres usado como
// chave primária dos registros do CRM
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
