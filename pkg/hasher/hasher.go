package hasher

import "golang.org/x/crypto/bcrypt"

// Hasher is the one-way password transform used by the auth service.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, hashed string) bool
}

type Bcrypt struct {
	Cost int
}

func NewBcrypt() *Bcrypt {
	return &Bcrypt{Cost: bcrypt.DefaultCost}
}

// Hash salts and hashes plaintext; salt and cost are embedded in the output.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare recomputes with the embedded salt and cost. The comparison inside
// bcrypt is constant-time, so response latency does not reveal near-misses.
func (b *Bcrypt) Compare(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
