package store

import (
	"crypto/rand"
	"math/big"
)

const codeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// randomCode returns n characters from a lowercase base36 alphabet, suitable
// for invite codes and task codes shown to users.
func randomCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken;
			// there is no reasonable recovery at this layer.
			panic(err)
		}
		b[i] = codeAlphabet[idx.Int64()]
	}
	return string(b)
}

// NewInviteCode returns a 10-character workspace invite code.
func NewInviteCode() string { return randomCode(10) }

// NewTaskCode returns a short task identifier like "task-8k2m1x".
func NewTaskCode() string { return "task-" + randomCode(6) }
