// Package signature verifica la autenticidad de los webhooks de LINE.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Validate comprueba que signature sea el HMAC-SHA256 en base64 del cuerpo
// crudo de la petición. El cuerpo debe ser exactamente los bytes recibidos:
// una re-serialización del JSON cambia el digest y rechaza firmas válidas.
func Validate(body []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign calcula la firma que LINE enviaría para un cuerpo dado. Útil en tests
// y para clientes que simulan la plataforma.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
