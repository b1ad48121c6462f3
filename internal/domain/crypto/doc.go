// Package crypto defines the RSA key models, the typed errors and the contracts
// implemented by the arithmetic core: exponentiation, primality testing, prime
// generation and textbook RSA key generation, encryption and decryption.
package crypto
