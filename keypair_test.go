package mohr_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"

	"github.com/hossein1376/mohr"
)

func TestNewKeyPair(t *testing.T) {
	a := require.New(t)

	kp0, err := mohr.NewKeyPair()
	a.NoError(err)
	a.NotNil(kp0)
	kp1, err := mohr.NewKeyPair()
	a.NoError(err)

	a.NotEqual(kp0.ID(), kp1.ID())
	a.Equal(kp0.ID(), kp0.ID())
	a.Len(kp0.PrivateKey(), ed25519.PrivateKeySize)
}

func TestNewKeyPairFromPrivate(t *testing.T) {
	a := require.New(t)

	kp, err := mohr.NewKeyPair()
	a.NoError(err)

	clone, err := mohr.NewKeyPairFromPrivate(kp.PrivateKey())
	a.NoError(err)
	a.Equal(kp.ID(), clone.ID())

	// signatures from the reconstructed pair verify under the
	// original identity
	sig, err := clone.Sign([]byte("restored"))
	a.NoError(err)
	a.NoError(kp.ID().Verify(sig, []byte("restored")))

	_, err = mohr.NewKeyPairFromPrivate(nil)
	a.ErrorIs(err, mohr.ErrInvalidLength)
	_, err = mohr.NewKeyPairFromPrivate(make([]byte, 3))
	a.ErrorIs(err, mohr.ErrInvalidLength)
}

func TestSignVerify(t *testing.T) {
	a := require.New(t)

	kp, err := mohr.NewKeyPair()
	a.NoError(err)
	id := kp.ID()
	msgs := [][]byte{[]byte("1234"), []byte("testdata")}

	sig, err := kp.Sign(msgs...)
	a.NoError(err)

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, id.Verify(sig, msgs...))
	})
	t.Run("repeatable", func(t *testing.T) {
		require.NoError(t, id.Verify(sig, msgs...))
		require.NoError(t, id.Verify(sig, []byte("1234"), []byte("testdata")))
	})
	t.Run("tampered message", func(t *testing.T) {
		err := id.Verify(sig, []byte("0234"), []byte("testdata"))
		require.ErrorIs(t, err, mohr.ErrInvalidSignature)
	})
	t.Run("dropped message", func(t *testing.T) {
		err := id.Verify(sig, []byte("1234"))
		require.ErrorIs(t, err, mohr.ErrInvalidSignature)
	})
	t.Run("reordered messages", func(t *testing.T) {
		err := id.Verify(sig, []byte("testdata"), []byte("1234"))
		require.ErrorIs(t, err, mohr.ErrInvalidSignature)
	})
	t.Run("wrong signer", func(t *testing.T) {
		other, err := mohr.NewKeyPair()
		require.NoError(t, err)
		err = other.ID().Verify(sig, msgs...)
		require.ErrorIs(t, err, mohr.ErrKeyMismatch)

		foreign, err := other.Sign(msgs...)
		require.NoError(t, err)
		err = id.Verify(foreign, msgs...)
		require.ErrorIs(t, err, mohr.ErrKeyMismatch)
	})
	t.Run("flipped signature bits", func(t *testing.T) {
		text := sig.String()
		for _, i := range []int{0, 10, 42, 84} {
			tampered, err := mohr.ParseSignatureSet(flipChar(text, i))
			require.NoError(t, err)
			err = id.Verify(tampered, msgs...)
			require.ErrorIs(t, err, mohr.ErrInvalidSignature)
		}
	})
}

func TestSignVerify_Boundaries(t *testing.T) {
	a := require.New(t)

	kp, err := mohr.NewKeyPair()
	a.NoError(err)
	id := kp.ID()

	// ["ab","c"] and ["a","bc"] concatenate to the same bytes; the
	// length-prefixed framing must keep them apart
	sig, err := kp.Sign([]byte("ab"), []byte("c"))
	a.NoError(err)

	a.NoError(id.Verify(sig, []byte("ab"), []byte("c")))
	a.ErrorIs(id.Verify(sig, []byte("a"), []byte("bc")), mohr.ErrInvalidSignature)
	a.ErrorIs(id.Verify(sig, []byte("abc")), mohr.ErrInvalidSignature)
	a.ErrorIs(
		id.Verify(sig, []byte("a"), []byte("b"), []byte("c")),
		mohr.ErrInvalidSignature,
	)
}

func TestSignVerify_EmptySet(t *testing.T) {
	a := require.New(t)

	kp, err := mohr.NewKeyPair()
	a.NoError(err)
	id := kp.ID()

	sig, err := kp.Sign()
	a.NoError(err)
	a.NoError(id.Verify(sig))

	// one empty message is not the same as no messages
	a.ErrorIs(id.Verify(sig, []byte{}), mohr.ErrInvalidSignature)

	single, err := kp.Sign([]byte{})
	a.NoError(err)
	a.NoError(id.Verify(single, []byte{}))
	a.ErrorIs(id.Verify(single), mohr.ErrInvalidSignature)
}

func TestSignVerify_Concurrent(t *testing.T) {
	kp, err := mohr.NewKeyPair()
	require.NoError(t, err)
	id := kp.ID()

	for n := 0; n < 8; n++ {
		t.Run("signer", func(t *testing.T) {
			t.Parallel()
			for i := 0; i < 50; i++ {
				msg := []byte{byte(i)}
				sig, err := kp.Sign(msg)
				require.NoError(t, err)
				require.NoError(t, id.Verify(sig, msg))
			}
		})
	}
}

func TestVerifyString(t *testing.T) {
	a := require.New(t)

	kp, err := mohr.NewKeyPair()
	a.NoError(err)
	sig, err := kp.Sign([]byte("token"))
	a.NoError(err)

	idText, sigText := kp.ID().String(), sig.String()

	a.True(mohr.VerifyString(idText, sigText, "token"))
	a.False(mohr.VerifyString(idText, sigText, "tokens"))
	a.False(mohr.VerifyString(idText, sigText, ""))
	a.False(mohr.VerifyString("not an id", sigText, "token"))
	a.False(mohr.VerifyString(idText, "not a signature", "token"))

	other, err := mohr.NewKeyPair()
	a.NoError(err)
	a.False(mohr.VerifyString(other.ID().String(), sigText, "token"))
}

// The full exchange: only text forms cross between signer and
// verifier.
func TestSignVerify_TextExchange(t *testing.T) {
	a := require.New(t)

	kp, err := mohr.NewKeyPair()
	a.NoError(err)
	sig, err := kp.Sign([]byte("hello"), []byte("world"))
	a.NoError(err)

	idText, sigText := kp.ID().String(), sig.String()

	id, err := mohr.ParseSessionID(idText)
	a.NoError(err)
	received, err := mohr.ParseSignatureSet(sigText)
	a.NoError(err)

	a.NoError(id.Verify(received, []byte("hello"), []byte("world")))
	a.Error(id.Verify(received, []byte("hello"), []byte("worlds")))
}
