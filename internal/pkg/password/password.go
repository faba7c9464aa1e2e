// Package password wraps bcrypt for credential storage. The digest embeds its own
// salt and cost, so Hash output is the only thing persisted.
package password

import "golang.org/x/crypto/bcrypt"

func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches the stored digest. Any error, including a
// malformed digest, counts as a mismatch; it never panics on user input.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
