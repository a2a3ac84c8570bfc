package configs

import (
	"encoding/base64"
	"fmt"
	"log"

	"github.com/gorilla/securecookie"
)

type SessionKeys struct {
	AuthKey []byte
	EncKey  []byte
}

// LoadSessionKeys decodes the cookie signing/encryption keys from the
// environment. When they are missing a random pair is generated so the
// server still boots; admin sessions then do not survive a restart, which is
// in line with everything else in this process being in-memory.
func LoadSessionKeys(env ENV) (*SessionKeys, error) {
	if env.AppAuthKey == "" || env.AppEncKey == "" {
		log.Println("Warning: APP_AUTH_KEY/APP_ENC_KEY not set, generating throwaway session keys")
		return &SessionKeys{
			AuthKey: securecookie.GenerateRandomKey(64),
			EncKey:  securecookie.GenerateRandomKey(32),
		}, nil
	}

	authKey, err := base64.URLEncoding.DecodeString(env.AppAuthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode APP_AUTH_KEY from Base64: %w", err)
	}
	encKey, err := base64.URLEncoding.DecodeString(env.AppEncKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode APP_ENC_KEY from Base64: %w", err)
	}

	if len(encKey) != 16 && len(encKey) != 24 && len(encKey) != 32 {
		return nil, fmt.Errorf("APP_ENC_KEY has invalid length %d after decoding. Must be 16, 24, or 32 bytes for AES encryption", len(encKey))
	}

	return &SessionKeys{AuthKey: authKey, EncKey: encKey}, nil
}

// GenerateAndPrintSessionKeys creates a fresh key pair for the .env file.
func GenerateAndPrintSessionKeys() error {
	authKey := securecookie.GenerateRandomKey(64)
	if authKey == nil {
		return fmt.Errorf("error: could not generate authentication key")
	}

	encKey := securecookie.GenerateRandomKey(32)
	if encKey == nil {
		return fmt.Errorf("error: could not generate encryption key")
	}

	fmt.Println("================================================")
	fmt.Printf("APP_AUTH_KEY=%s\n", base64.URLEncoding.EncodeToString(authKey))
	fmt.Printf("APP_ENC_KEY=%s\n", base64.URLEncoding.EncodeToString(encKey))
	fmt.Println("================================================")
	fmt.Println("Copy these lines into your .env file.")

	return nil
}
