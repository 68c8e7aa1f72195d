package tour

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSection = errors.New("unknown section")

// Section names one step of the tour.
type Section string

const (
	Hashing      Section = "hashing"
	Encryption   Section = "encryption"
	Signing      Section = "signing"
	Salting      Section = "salting"
	KeyAgreement Section = "key-agreement"
)

// AllSections lists the sections in run order.
func AllSections() []Section {
	return []Section{Hashing, Encryption, Signing, Salting, KeyAgreement}
}

func ParseSection(v string) (Section, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, s := range AllSections() {
		if string(s) == v {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownSection, v)
}

func (s Section) valid() bool {
	for _, known := range AllSections() {
		if s == known {
			return true
		}
	}
	return false
}

func (s Section) title() string {
	switch s {
	case Hashing:
		return "Secure Hashing"
	case Encryption:
		return "Encryption"
	case Signing:
		return "Key Signing"
	case Salting:
		return "Password Salting"
	case KeyAgreement:
		return "Key Agreement"
	}
	return string(s)
}
