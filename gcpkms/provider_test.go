package gcpkms

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	kmspb "cloud.google.com/go/kms/apiv1/kmspb"

	"github.com/rbaliyan/sburger"
)

const resource = "projects/p/locations/l/keyRings/r/cryptoKeys/k"

type mockClient struct {
	keys   map[string][]byte // ciphertext -> plaintext
	failOn string
	names  []string
}

func (m *mockClient) Decrypt(ctx context.Context, req *kmspb.DecryptRequest) (*kmspb.DecryptResponse, error) {
	m.names = append(m.names, req.Name)
	ct := string(req.Ciphertext)
	if ct == m.failOn {
		return nil, fmt.Errorf("kms: permission denied")
	}
	plaintext, ok := m.keys[ct]
	if !ok {
		return nil, fmt.Errorf("kms: invalid ciphertext")
	}
	return &kmspb.DecryptResponse{Plaintext: plaintext}, nil
}

func makeKey(seed byte) []byte {
	key := make([]byte, 32)
	for i := range key {
		key[i] = seed + byte(i)
	}
	return key
}

func TestNewRotation(t *testing.T) {
	client := &mockClient{keys: map[string][]byte{
		"enc-new": makeKey(100),
		"enc-old": makeKey(1),
	}}

	p, err := New(context.Background(), client,
		WithEncryptedKey([]byte("enc-new"), "key-v2", resource),
		WithEncryptedKey([]byte("enc-old"), "key-v1", resource+"-old"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	current, err := p.CurrentKey()
	if err != nil {
		t.Fatal(err)
	}
	if current.ID != "key-v2" || !bytes.Equal(current.Bytes, makeKey(100)) {
		t.Errorf("CurrentKey: got %q %x", current.ID, current.Bytes)
	}
	if _, err := p.KeyByID("key-v1"); err != nil {
		t.Errorf("KeyByID(key-v1): %v", err)
	}
	if len(client.names) != 2 || client.names[0] != resource || client.names[1] != resource+"-old" {
		t.Errorf("resource names sent: got %q", client.names)
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		client Client
		opts   []Option
	}{
		{"no keys", &mockClient{}, nil},
		{"nil client", nil, []Option{WithEncryptedKey([]byte("x"), "key-1", resource)}},
		{"missing resource", &mockClient{}, []Option{WithEncryptedKey([]byte("x"), "key-1", "")}},
		{"decrypt failure", &mockClient{failOn: "x"}, []Option{WithEncryptedKey([]byte("x"), "key-1", resource)}},
		{"empty ID", &mockClient{keys: map[string][]byte{"x": makeKey(1)}}, []Option{WithEncryptedKey([]byte("x"), "", resource)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(context.Background(), tt.client, tt.opts...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewPlaintextWiped(t *testing.T) {
	plaintext := makeKey(1)
	client := &mockClient{keys: map[string][]byte{"enc": plaintext}}

	if _, err := New(context.Background(), client, WithEncryptedKey([]byte("enc"), "key-1", resource)); err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, b := range plaintext {
		if b != 0 {
			t.Fatal("decrypted key material was not zeroed after construction")
		}
	}
}

func TestNewReturnsKeyProvider(t *testing.T) {
	client := &mockClient{keys: map[string][]byte{"enc": makeKey(1)}}
	p, err := New(context.Background(), client, WithEncryptedKey([]byte("enc"), "key-1", resource))
	if err != nil {
		t.Fatal(err)
	}
	var _ sburger.KeyProvider = p
}
