// Package glossary holds the cryptography terms the tour refers to.
package glossary

import (
	"sort"
	"strings"
)

// Term is a glossary entry.
type Term struct {
	Name       string
	Definition string
}

var terms = []Term{
	{"AEAD", "Authenticated Encryption with Associated Data. An encryption mode providing both confidentiality and tamper detection."},
	{"AES-GCM", "The Advanced Encryption Standard block cipher run in Galois/Counter Mode, an AEAD."},
	{"Diffie-Hellman Key Exchange", "Also known as key agreement. Two parties derive the same symmetric key through a series of public exchanges, without the secret ever being transmitted."},
	{"Digest", "The fixed-length output of a hash function. Also known as the hash value."},
	{"ECC", "Elliptic Curve Cryptography. Curve arithmetic that is easy to compute forwards and infeasible to reverse, used for key agreement (ECDH) and signatures (ECDSA)."},
	{"Encryption", "Converting data into an unrecognizable form (ciphertext) with a key. Only the right key converts it back."},
	{"Hash", "A function mapping input of arbitrary size to a deterministic output of fixed size."},
	{"HKDF", "HMAC-based key derivation function. Turns a shared secret, a salt and context bytes into one or more symmetric keys."},
	{"Key Derivation Function", "A deterministic function turning a shared secret or seed into one or more symmetric keys."},
	{"Key Signing", "Signing content with a private key so anyone holding the public key can verify the sender and the integrity of the content."},
	{"Keys", "Asymmetric keys come in pairs: a private key only its owner holds and a public key anyone may see. Symmetric keys are identical secrets shared by both parties."},
	{"NIST", "The National Institute of Standards and Technology."},
	{"Nonce", "A number used once. A non-secret random value that makes each encryption unique and defeats replay attacks."},
	{"Salt", "A non-secret random value mixed into a cryptographic computation to defeat precomputation attacks."},
	{"SHA", "Secure Hash Algorithm. A hash whose output looks random and cannot be inverted to recover the input."},
}

// Terms returns all entries sorted by name.
func Terms() []Term {
	out := make([]Term, len(terms))
	copy(out, terms)
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Lookup finds a term by name, ignoring case and surrounding space.
func Lookup(name string) (Term, bool) {
	name = strings.TrimSpace(name)
	for _, t := range terms {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Term{}, false
}
