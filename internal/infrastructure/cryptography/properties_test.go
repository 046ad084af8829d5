//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"testing"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"

	"pgregory.net/rapid"
)

func TestAESRoundTripProperty(t *testing.T) {
	processor := setupAESProcessor(t)

	rapid.Check(t, func(t *rapid.T) {
		size := rapid.SampledFrom([]int{TestAESKey128, TestAESKey192, TestAESKey256}).Draw(t, "keySize")
		plainText := rapid.SliceOfN(rapid.Byte(), 0, 4096).Draw(t, "plainText")

		key, err := processor.GenerateKey(size)
		if err != nil {
			t.Fatalf("generate key: %v", err)
		}

		envelope, err := processor.Encrypt(plainText, key)
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}
		if len(envelope) != MinEnvelopeSize+len(plainText) {
			t.Fatalf("envelope length %d, want %d", len(envelope), MinEnvelopeSize+len(plainText))
		}

		decrypted, err := processor.Decrypt(envelope, key)
		if err != nil {
			t.Fatalf("decrypt: %v", err)
		}
		if !bytes.Equal(decrypted, plainText) {
			t.Fatalf("round trip mismatch")
		}
	})
}

func TestAESTamperProperty(t *testing.T) {
	processor := setupAESProcessor(t)
	key, err := processor.GenerateKey(TestAESKey256)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	rapid.Check(t, func(t *rapid.T) {
		plainText := rapid.SliceOfN(rapid.Byte(), 0, 512).Draw(t, "plainText")

		envelope, err := processor.Encrypt(plainText, key)
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}

		index := rapid.IntRange(0, len(envelope)-1).Draw(t, "index")
		mask := rapid.ByteRange(1, 255).Draw(t, "mask")
		envelope[index] ^= mask

		if _, err := processor.Decrypt(envelope, key); !crypto.IsAuthenticationFailed(err) {
			t.Fatalf("tampered byte %d accepted: %v", index, err)
		}
	})
}

func TestAESNonceUniquenessProperty(t *testing.T) {
	processor := setupAESProcessor(t)
	key, err := processor.GenerateKey(TestAESKey128)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	seen := make(map[string]struct{})
	rapid.Check(t, func(t *rapid.T) {
		plainText := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, "plainText")

		envelope, err := processor.Encrypt(plainText, key)
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}

		nonce := string(envelope[:NonceSize])
		if _, dup := seen[nonce]; dup {
			t.Fatalf("nonce reused")
		}
		seen[nonce] = struct{}{}
	})
}

func TestDigestDeterminismProperty(t *testing.T) {
	processor := setupHashProcessor(t)

	rapid.Check(t, func(t *rapid.T) {
		algorithm := rapid.SampledFrom([]crypto.HashAlgorithm{crypto.HashSHA256, crypto.HashSHA512, crypto.HashMD5}).Draw(t, "algorithm")
		data := rapid.SliceOf(rapid.Byte()).Draw(t, "data")

		first, err := processor.Digest(data, algorithm)
		if err != nil {
			t.Fatalf("digest: %v", err)
		}
		second, err := processor.Digest(data, algorithm)
		if err != nil {
			t.Fatalf("digest: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Fatalf("digest not deterministic")
		}
	})
}

func TestRSARoundTripProperty(t *testing.T) {
	processor := setupRSAProcessor(t)
	privateKey, publicKey, err := processor.GenerateKeys(TestKeySize2048)
	if err != nil {
		t.Fatalf("generate keys: %v", err)
	}

	rapid.Check(t, func(t *rapid.T) {
		plainText := rapid.SliceOfN(rapid.Byte(), 0, processor.MaxPlaintextSize(publicKey)).Draw(t, "plainText")

		encrypted, err := processor.Encrypt(plainText, publicKey)
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}
		decrypted, err := processor.Decrypt(encrypted, privateKey)
		if err != nil {
			t.Fatalf("decrypt: %v", err)
		}
		if !bytes.Equal(decrypted, plainText) {
			t.Fatalf("round trip mismatch")
		}
	})
}
