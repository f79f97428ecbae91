package user

// CredentialVerifier is the port for password hashing. Production wires a
// slow salted scheme (bcrypt); tests substitute a fast one. Keeping the
// scheme behind an interface means the domain never commits to an algorithm.
type CredentialVerifier interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext matches the stored hash.
	Verify(password, hash string) bool
}
