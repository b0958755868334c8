package credstore

import (
	"encoding/json"
	"fmt"

	"github.com/minhle/roomstay/internal/util"
)

const (
	sealInfo = "roomstay:credential-key:v1"
	sealAAD  = "roomstay:credential:v1"
)

// Envelope is a sealed credential record containing AES-256-GCM
// encrypted data.
type Envelope struct {
	Ver        int    `json:"ver"`
	Scheme     string `json:"scheme"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// SealCredential encrypts a credential into an Envelope. The sealing key
// is derived from the caller-supplied 32-byte secret, which must live
// outside the credential database (keyfile) so a copied database alone
// does not expose the token.
func SealCredential(secret []byte, cred Credential) (*Envelope, error) {
	key, err := sealingKey(secret)
	if err != nil {
		return nil, err
	}
	defer util.WipeBytes(key)

	data, err := json.Marshal(cred)
	if err != nil {
		return nil, fmt.Errorf("encoding credential: %w", err)
	}
	defer util.WipeBytes(data)

	sealed, err := util.EncryptAESWithAAD(data, key, []byte(sealAAD))
	if err != nil {
		return nil, err
	}

	// util.EncryptAESWithAAD returns nonce || ciphertext.
	return &Envelope{
		Ver:        1,
		Scheme:     "aes256gcm",
		Nonce:      sealed[:12],
		Ciphertext: sealed[12:],
	}, nil
}

// OpenCredential decrypts an Envelope produced by SealCredential.
func OpenCredential(secret []byte, env *Envelope) (Credential, error) {
	if env.Ver != 1 {
		return Credential{}, fmt.Errorf("unsupported envelope version: %d", env.Ver)
	}
	if env.Scheme != "aes256gcm" {
		return Credential{}, fmt.Errorf("unsupported envelope scheme: %s", env.Scheme)
	}

	key, err := sealingKey(secret)
	if err != nil {
		return Credential{}, err
	}
	defer util.WipeBytes(key)

	sealed := make([]byte, len(env.Nonce)+len(env.Ciphertext))
	copy(sealed, env.Nonce)
	copy(sealed[len(env.Nonce):], env.Ciphertext)

	data, err := util.DecryptAESWithAAD(sealed, key, []byte(sealAAD))
	if err != nil {
		return Credential{}, err
	}
	defer util.WipeBytes(data)

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return Credential{}, fmt.Errorf("decoding credential: %w", err)
	}
	return cred, nil
}

func sealingKey(secret []byte) ([]byte, error) {
	if len(secret) != util.AESKeySize {
		return nil, fmt.Errorf("%w, got %d", ErrKeySize, len(secret))
	}
	return util.HKDF(secret, nil, []byte(sealInfo))
}
