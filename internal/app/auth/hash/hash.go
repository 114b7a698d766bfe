package hash

import (
	"github.com/alexedwards/argon2id"

	customErrors "github.com/pagepal-app/pagepal/auth-service/internal/domain/auth/errors"
)

var defaultParams = &argon2id.Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  2,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

// Hasher produces and verifies argon2id password hashes. The pepper is a
// process-wide secret mixed into every plaintext before hashing, so stored
// hashes are useless without it.
type Hasher struct {
	pepper string
	params *argon2id.Params
}

func New(pepper string) *Hasher {
	return &Hasher{pepper: pepper, params: defaultParams}
}

// Hash returns a self-describing PHC-format hash. The salt is random per
// call, so hashing the same plaintext twice never yields the same string.
func (h *Hasher) Hash(plaintext string) (string, error) {
	s, err := argon2id.CreateHash(plaintext+h.pepper, h.params)
	if err != nil {
		return "", customErrors.WrapInternal(err, "Hash")
	}
	return s, nil
}

// Verify recomputes the hash using the parameters and salt embedded in
// encoded and compares in constant time. A mismatch is (false, nil); a
// stored hash that cannot be parsed is reported as ErrHashFormat, never as
// a silent success.
func (h *Hasher) Verify(plaintext, encoded string) (bool, error) {
	ok, err := argon2id.ComparePasswordAndHash(plaintext+h.pepper, encoded)
	if err != nil {
		return false, customErrors.WrapHashFormat(err)
	}
	return ok, nil
}
