// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"bytes"
	"errors"
	"testing"
)

// TestNonce tests the Nonce API.
func TestNonce(t *testing.T) {
	nonceBytes := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
	}
	const nonceStr = "00112233445566778899aabbccddeeff"

	nonce, err := NewNonce(nonceBytes)
	if err != nil {
		t.Fatalf("NewNonce: unexpected error %v", err)
	}
	if got := nonce.String(); got != nonceStr {
		t.Errorf("String: mismatched result -- got %s, want %s", got,
			nonceStr)
	}
	if !bytes.Equal(nonce.CloneBytes(), nonceBytes) {
		t.Errorf("CloneBytes: mismatched result -- got %x, want %x",
			nonce.CloneBytes(), nonceBytes)
	}

	// Modifying the cloned bytes must not modify the nonce.
	cloned := nonce.CloneBytes()
	cloned[0] = 0xff
	if nonce[0] != 0x00 {
		t.Errorf("CloneBytes: modifying the clone modified the nonce")
	}

	fromStr, err := NewNonceFromStr(nonceStr)
	if err != nil {
		t.Fatalf("NewNonceFromStr: unexpected error %v", err)
	}
	if !nonce.IsEqual(fromStr) {
		t.Errorf("IsEqual: nonce %v from string is not equal to %v", fromStr,
			nonce)
	}

	// Ensure a nonce with different contents is not equal.
	var other Nonce
	if nonce.IsEqual(&other) {
		t.Errorf("IsEqual: nonce %v is equal to %v", nonce, other)
	}

	// Ensure nil handling works as intended.
	var nilNonce *Nonce
	if !nilNonce.IsEqual(nil) {
		t.Errorf("IsEqual: nil nonces are not equal")
	}
	if nilNonce.IsEqual(nonce) || nonce.IsEqual(nil) {
		t.Errorf("IsEqual: nil nonce is equal to non-nil nonce")
	}

	// Ensure SetBytes rejects the wrong length and does not modify the nonce.
	err = nonce.SetBytes(nonceBytes[:NonceSize-1])
	if !errors.Is(err, ErrNonceSize) {
		t.Errorf("SetBytes: mismatched err -- got %v, want %v", err,
			ErrNonceSize)
	}
	if got := nonce.String(); got != nonceStr {
		t.Errorf("SetBytes: nonce modified on error -- got %s, want %s", got,
			nonceStr)
	}
}

// TestNewNonceErrors ensures creating nonces from byte slices and strings of
// the wrong size or encoding fails.
func TestNewNonceErrors(t *testing.T) {
	if _, err := NewNonce(make([]byte, NonceSize+1)); !errors.Is(err, ErrNonceSize) {
		t.Errorf("NewNonce: mismatched err -- got %v, want %v", err,
			ErrNonceSize)
	}
	if _, err := NewNonce(nil); !errors.Is(err, ErrNonceSize) {
		t.Errorf("NewNonce(nil): mismatched err -- got %v, want %v", err,
			ErrNonceSize)
	}

	tests := []struct {
		name    string // test description
		in      string // nonce string to decode
		wantErr error  // expected error kind, nil for any non-kind error
	}{{
		name:    "empty",
		in:      "",
		wantErr: ErrNonceStrSize,
	}, {
		name:    "too short",
		in:      "0011223344556677",
		wantErr: ErrNonceStrSize,
	}, {
		name:    "too long",
		in:      "00112233445566778899aabbccddeeff00",
		wantErr: ErrNonceStrSize,
	}, {
		name: "invalid hex",
		in:   "zz112233445566778899aabbccddeeff",
	}}

	for _, test := range tests {
		_, err := NewNonceFromStr(test.in)
		if err == nil {
			t.Errorf("%q: expected error", test.name)
			continue
		}
		if test.wantErr != nil && !errors.Is(err, test.wantErr) {
			t.Errorf("%q: mismatched err -- got %v, want %v", test.name, err,
				test.wantErr)
		}
	}

	// Ensure a failed decode leaves the destination untouched.
	dst := Nonce{0x01}
	if err := Decode(&dst, "zz112233445566778899aabbccddeeff"); err == nil {
		t.Fatal("Decode: expected error for invalid hex")
	}
	if dst != (Nonce{0x01}) {
		t.Errorf("Decode: destination modified on error -- got %v", dst)
	}
}
