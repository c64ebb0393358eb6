package ports

// SecurityPort seals sensitive citizen data (the Aadhaar number) while it
// sits in a session. A sealed value is bound to the scope it was sealed
// under and cannot be opened under another one.
type SecurityPort interface {
	// Seal returns the base64 ciphertext of plaintext for scope.
	Seal(plaintext, scope string) (string, error)

	// Unseal reverses Seal. It fails when the value was tampered with or
	// was sealed under a different scope.
	Unseal(sealed, scope string) (string, error)
}
