package create_reservation

import (
	"crypto/rand"
	"math/big"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// RandomCodeGenerator генерирует коды из [a-zA-Z0-9] криптостойким генератором
type RandomCodeGenerator struct{}

// Generate возвращает код длины domain.ConfirmationCodeLength
func (RandomCodeGenerator) Generate() (string, error) {
	alphabet := domain.ReservationCodeAlphabet
	limit := big.NewInt(int64(len(alphabet)))

	code := make([]byte, domain.ConfirmationCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		code[i] = alphabet[n.Int64()]
	}

	return string(code), nil
}
