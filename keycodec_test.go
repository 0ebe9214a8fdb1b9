package sflcrypto

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
)

func TestEncodePublicKey_KnownForm(t *testing.T) {
	key := PublicKey{P: big.NewInt(11), G: big.NewInt(2), Y: big.NewInt(9)}

	encoded := EncodePublicKey(key)
	if encoded != "Cw==:Ag==:CQ==" {
		t.Errorf("EncodePublicKey() = %q, want %q", encoded, "Cw==:Ag==:CQ==")
	}

	decoded, err := DecodePublicKey(encoded)
	if err != nil {
		t.Fatalf("DecodePublicKey() error = %v", err)
	}
	if decoded.P.Int64() != 11 || decoded.G.Int64() != 2 || decoded.Y.Int64() != 9 {
		t.Errorf("DecodePublicKey() = (%v, %v, %v), want (11, 2, 9)", decoded.P, decoded.G, decoded.Y)
	}
}

func TestEncodePrivateKey_KnownForm(t *testing.T) {
	key := PrivateKey{
		big.NewInt(1234567890123456789),
		big.NewInt(987654321),
		big.NewInt(65537),
		big.NewInt(255),
	}

	encoded := EncodePrivateKey(key)
	want := "ESIQ9H3pgRU=:Ot5osQ==:AQAB:/w=="
	if encoded != want {
		t.Errorf("EncodePrivateKey() = %q, want %q", encoded, want)
	}
}

func TestPublicKey_RoundTrip(t *testing.T) {
	mustInt := func(s string) *big.Int {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			t.Fatalf("bad test integer %q", s)
		}
		return v
	}

	tests := []struct {
		name string
		key  PublicKey
	}{
		{"small", PublicKey{P: big.NewInt(11), G: big.NewInt(2), Y: big.NewInt(9)}},
		{"zero field", PublicKey{P: big.NewInt(0), G: big.NewInt(2), Y: big.NewInt(9)}},
		{"large", PublicKey{
			P: mustInt("174807157365465092731323561678522236549173502913317875393564963123330281052524687450754910240009920154525635325209526987433833785499384204819179549544106498491589834195860008906875039418684191252537604123129659746721614402346449135195832955793815709136053198207712511838753919608894095907732099313139446299843"),
			G: mustInt("2"),
			Y: mustInt("5649573916440083877745947430025159562894797745558597582520341112765576668958560505059413365763418429669561230470901538948536527433136537970108185484848963"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodePublicKey(EncodePublicKey(tt.key))
			if err != nil {
				t.Fatalf("DecodePublicKey() error = %v", err)
			}
			if decoded.P.Cmp(tt.key.P) != 0 || decoded.G.Cmp(tt.key.G) != 0 || decoded.Y.Cmp(tt.key.Y) != 0 {
				t.Errorf("round trip = (%v, %v, %v), want (%v, %v, %v)",
					decoded.P, decoded.G, decoded.Y, tt.key.P, tt.key.G, tt.key.Y)
			}
		})
	}
}

func TestPrivateKey_RoundTrip(t *testing.T) {
	key := PrivateKey{
		new(big.Int).Lsh(big.NewInt(1), 512),
		big.NewInt(987654321),
		big.NewInt(0),
		big.NewInt(255),
	}

	decoded, err := DecodePrivateKey(EncodePrivateKey(key))
	if err != nil {
		t.Fatalf("DecodePrivateKey() error = %v", err)
	}
	for i := range key {
		if decoded[i].Cmp(key[i]) != 0 {
			t.Errorf("field %d = %v, want %v", i, decoded[i], key[i])
		}
	}
}

func TestMessagePair_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		pair MessagePair
	}{
		{"simple", MessagePair{C1: []byte{0x01, 0x02, 0x03}, C2: []byte("hello")}},
		{"empty components", MessagePair{C1: []byte{}, C2: []byte{}}},
		{"binary", MessagePair{C1: []byte{0x00, 0xff, 0x00}, C2: bytes.Repeat([]byte{0x5a}, 256)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodeMessagePair(tt.pair)
			decoded, err := DecodeMessagePair(encoded)
			if err != nil {
				t.Fatalf("DecodeMessagePair() error = %v", err)
			}
			if !bytes.Equal(decoded.C1, tt.pair.C1) || !bytes.Equal(decoded.C2, tt.pair.C2) {
				t.Errorf("round trip = (%x, %x), want (%x, %x)", decoded.C1, decoded.C2, tt.pair.C1, tt.pair.C2)
			}
		})
	}
}

func TestDecode_MalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		fn    func(string) error
	}{
		{"pair: one field", "AQID", func(s string) error { _, err := DecodeMessagePair(s); return err }},
		{"pair: three fields", "AQID:AQID:AQID", func(s string) error { _, err := DecodeMessagePair(s); return err }},
		{"pair: bad base64", "!!!:AQID", func(s string) error { _, err := DecodeMessagePair(s); return err }},
		{"pubkey: two fields", "Cw==:Ag==", func(s string) error { _, err := DecodePublicKey(s); return err }},
		{"pubkey: four fields", "Cw==:Ag==:CQ==:CQ==", func(s string) error { _, err := DecodePublicKey(s); return err }},
		{"pubkey: bad base64", "Cw==:Ag==:not base64", func(s string) error { _, err := DecodePublicKey(s); return err }},
		{"privkey: three fields", "Cw==:Ag==:CQ==", func(s string) error { _, err := DecodePrivateKey(s); return err }},
		{"privkey: empty input", "", func(s string) error { _, err := DecodePrivateKey(s); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(tt.input); !errors.Is(err, ErrFormat) {
				t.Errorf("error = %v, want ErrFormat", err)
			}
		})
	}
}
