package pkg

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes an admin password for storage.
func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	return string(b), err
}

// ComparePassword checks a plaintext password against a stored hash.
func ComparePassword(hash, pw string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
}
