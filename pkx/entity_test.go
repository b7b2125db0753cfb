package pkx

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/pkxcodec/internal/bytefield"
	"github.com/udisondev/pkxcodec/internal/crypto"
)

func TestEntity_RoundTrip(t *testing.T) {
	for _, gen := range encryptedGenerations() {
		stored, party, err := Sizes(gen)
		require.NoError(t, err)
		for _, n := range []int{stored, party} {
			for _, seed := range []uint32{0x12345678, 0xDEADBEEF} {
				t.Run(fmt.Sprintf("gen%s/%d/%08X", gen, n, seed), func(t *testing.T) {
					plain := fixture(t, gen, n, seed)
					enc := bytes.Clone(plain)
					require.NoError(t, Encrypt(gen, enc))
					assert.NotEqual(t, plain, enc)

					encrypted, err := IsEncrypted(gen, enc)
					require.NoError(t, err)
					assert.True(t, encrypted)

					e, err := New(gen, bytes.Clone(enc))
					require.NoError(t, err)
					assert.Equal(t, n == party, e.Party())
					assert.Equal(t, plain, e.Bytes())
					assert.True(t, e.ChecksumValid())

					assert.Equal(t, enc, e.EncryptedCopy())
					assert.Equal(t, plain, e.Bytes(), "EncryptedCopy must not touch the entity")
					assert.Equal(t, enc, e.Finalize(true))
				})
			}
		}
	}
}

func TestEntity_KnownCiphertext(t *testing.T) {
	tests := []struct {
		gen      Generation
		checksum uint16
		head     string
		tail     string
	}{
		{gen: Gen4, checksum: 0x88E8, head: "68dda5c82134d6b9", tail: "d08a297b7682e788"},
		{gen: Gen5, checksum: 0x88E8, head: "68dda5c82134d6b9", tail: "d08a297b7682e788"},
		{gen: Gen9, checksum: 0xBE4E, head: "7823ade20f7d2316", tail: "9ec0a851a7a5149f"},
	}

	for _, tt := range tests {
		t.Run("gen"+tt.gen.String(), func(t *testing.T) {
			stored, _, err := Sizes(tt.gen)
			require.NoError(t, err)
			buf := fixture(t, tt.gen, stored, 0x12345678)

			e, err := New(tt.gen, buf)
			require.NoError(t, err)
			assert.Equal(t, tt.checksum, e.Checksum())

			enc := e.Finalize(true)
			assert.Equal(t, tt.head, hex.EncodeToString(enc[8:16]))
			assert.Equal(t, tt.tail, hex.EncodeToString(enc[stored-8:stored]))
		})
	}
}

// DS-era records key the payload with the checksum and the party tail with the
// PID; the block order still follows the PID.
func TestEntity_ChecksumKeyedPayload(t *testing.T) {
	for _, gen := range []Generation{Gen4, Gen5} {
		stored, party, err := Sizes(gen)
		require.NoError(t, err)
		for _, n := range []int{stored, party} {
			t.Run(fmt.Sprintf("gen%s/%d", gen, n), func(t *testing.T) {
				b := bytefield.Buffer(make([]byte, n))
				b.SetU32(0x00, 0x12345678)
				b.SetU16(0x08, 25)
				b.SetU32(0x10, 1000)
				if n == party {
					b.SetU16(0x8E, 35)
				}
				b.SetU16(0x06, crypto.Checksum16(b[8:stored]))
				chk := b.U16(0x06)
				require.Equal(t, uint16(0x0401), chk)
				plain := bytes.Clone(b)

				crypto.Shuffle(b, 8, 32, crypto.ShuffleSelector(0x12345678))
				crypto.CryptArray(b, uint32(chk), 8, stored)
				if n == party {
					crypto.CryptArray(b, 0x12345678, stored, n)
				}
				enc := bytes.Clone(b)
				assert.Equal(t, "c8f9944d", hex.EncodeToString(enc[0x64:0x68]))

				e, err := New(gen, b)
				require.NoError(t, err)
				assert.Equal(t, plain, e.Bytes())
				assert.Equal(t, uint16(25), e.Species())
				assert.Equal(t, uint32(1000), e.Experience())
				assert.True(t, e.ChecksumValid())
				if n == party {
					assert.Equal(t, uint16(35), e.PartyCurrentHP())
				}
				assert.Equal(t, enc, e.EncryptedCopy())
			})
		}
	}
}

func TestEncryptDecrypt_Idempotent(t *testing.T) {
	for _, gen := range encryptedGenerations() {
		t.Run("gen"+gen.String(), func(t *testing.T) {
			stored, _, err := Sizes(gen)
			require.NoError(t, err)
			plain := fixture(t, gen, stored, 0xDEADBEEF)

			buf := bytes.Clone(plain)
			require.NoError(t, Decrypt(gen, buf))
			assert.Equal(t, plain, buf, "decrypting plaintext is a no-op")

			require.NoError(t, Encrypt(gen, buf))
			enc := bytes.Clone(buf)
			require.NoError(t, Encrypt(gen, buf))
			assert.Equal(t, enc, buf, "encrypting ciphertext is a no-op")

			require.NoError(t, Decrypt(gen, buf))
			assert.Equal(t, plain, buf)
		})
	}
}

func TestEntity_GameBoyPlaintext(t *testing.T) {
	for _, gen := range []Generation{Gen1, Gen2} {
		t.Run("gen"+gen.String(), func(t *testing.T) {
			_, party, err := Sizes(gen)
			require.NoError(t, err)
			plain := fixture(t, gen, party, 0)

			encrypted, err := IsEncrypted(gen, plain)
			require.NoError(t, err)
			assert.False(t, encrypted)

			buf := bytes.Clone(plain)
			require.NoError(t, Encrypt(gen, buf))
			assert.Equal(t, plain, buf)

			e, err := New(gen, buf)
			require.NoError(t, err)
			assert.True(t, e.ChecksumValid())
			assert.Zero(t, e.ComputeChecksum())
			assert.Equal(t, plain, e.Finalize(true))
		})
	}
}

func TestChecksum_ChangesWithPayload(t *testing.T) {
	for _, gen := range encryptedGenerations() {
		t.Run("gen"+gen.String(), func(t *testing.T) {
			stored, _, err := Sizes(gen)
			require.NoError(t, err)
			e, err := New(gen, fixture(t, gen, stored, 0x12345678))
			require.NoError(t, err)
			before := e.ComputeChecksum()

			// Any payload word counts; the checksum field itself does not.
			e.buf.SetU16(stored-2, e.buf.U16(stored-2)+1)
			assert.Equal(t, before+1, e.ComputeChecksum())
			assert.False(t, e.ChecksumValid())

			e.buf.SetU16(6, 0)
			assert.Equal(t, before+1, e.ComputeChecksum())

			e.RefreshChecksum()
			assert.True(t, e.ChecksumValid())
		})
	}
}

func TestNew_LogsChecksumMismatch(t *testing.T) {
	stored, _, err := Sizes(Gen9)
	require.NoError(t, err)
	buf := fixture(t, Gen9, stored, 0x12345678)
	buf[6]++

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e, err := New(Gen9, buf, WithLogger(logger))
	require.NoError(t, err)

	assert.False(t, e.ChecksumValid())
	assert.Contains(t, out.String(), "entity checksum mismatch")
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		gen     Generation
		size    int
		wantErr error
	}{
		{name: "short gen9", gen: Gen9, size: 10, wantErr: ErrBufferSize},
		{name: "between sizes", gen: Gen6, size: 240, wantErr: ErrBufferSize},
		{name: "gen1 with gen2 size", gen: Gen1, size: 32, wantErr: ErrBufferSize},
		{name: "gen3", gen: Generation(3), size: 80, wantErr: ErrGeneration},
		{name: "unknown", gen: Generation(42), size: 0x148, wantErr: ErrGeneration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.gen, make([]byte, tt.size))
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = IsEncrypted(tt.gen, make([]byte, tt.size))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, Encrypt(tt.gen, make([]byte, tt.size)), tt.wantErr)
			assert.ErrorIs(t, Decrypt(tt.gen, make([]byte, tt.size)), tt.wantErr)
		})
	}
}

func TestSizes(t *testing.T) {
	tests := []struct {
		gen           Generation
		stored, party int
	}{
		{Gen1, 33, 44},
		{Gen2, 32, 48},
		{Gen4, 136, 236},
		{Gen5, 136, 220},
		{Gen6, 232, 260},
		{Gen7, 232, 260},
		{GenLGPE, 232, 260},
		{Gen8, 0x148, 0x158},
		{Gen9, 0x148, 0x158},
	}
	for _, tt := range tests {
		stored, party, err := Sizes(tt.gen)
		require.NoError(t, err)
		assert.Equal(t, tt.stored, stored, "gen %s", tt.gen)
		assert.Equal(t, tt.party, party, "gen %s", tt.gen)
	}

	_, _, err := Sizes(Generation(3))
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestParseGeneration(t *testing.T) {
	for _, g := range Generations {
		got, err := ParseGeneration(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, got)
	}

	got, err := ParseGeneration(" LGPE ")
	require.NoError(t, err)
	assert.Equal(t, GenLGPE, got)

	_, err = ParseGeneration("3")
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestFinalize_ReleasesBuffer(t *testing.T) {
	e := blank(t, Gen9, false)
	out := e.Finalize(false)
	assert.Len(t, out, 0x148)
	assert.Nil(t, e.Bytes())
}
