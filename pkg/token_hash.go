package pkg

import "golang.org/x/crypto/bcrypt"

// TokenHashCost is the bcrypt cost of API token hashes.
const TokenHashCost = 12

func HashToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), TokenHashCost)
	if err != nil {
		return "", err
	}
	return BytesToString(hash), nil
}

// CheckTokenHash reports whether token matches the bcrypt hash. Hashes of
// any cost are accepted.
func CheckTokenHash(token, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil
}
