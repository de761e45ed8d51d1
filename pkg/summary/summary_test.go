package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/pkx/internal/fixtures"
	"github.com/ssargent/pkx/pkg/pkm"
	"github.com/ssargent/pkx/pkg/types"
)

func TestSummarizeGastly(t *testing.T) {
	pk, err := pkm.NewPK7(fixtures.GastlyEncrypted)
	require.NoError(t, err)

	s := Summarize(pk)
	assert.Equal(t, "pk7", s.Format)
	assert.True(t, s.Valid)
	assert.False(t, s.Party)
	assert.Equal(t, "Gastly", s.Species)
	assert.Equal(t, "Star", s.Shiny)
	assert.Equal(t, "Bold", s.Nature)
	assert.Equal(t, "Levitate", s.Ability)
	assert.Equal(t, "First", s.AbilitySlot)
	assert.Equal(t, "PKHeX", s.OTName)
	assert.Equal(t, uint16(35001), s.TID)
	assert.Equal(t, uint8(138), s.Friendship)
	assert.Equal(t, "Electric", s.HiddenPower)
	assert.Equal(t, 123, s.IVTotal)
	assert.Equal(t, s.EVs.Total(), s.EVTotal)
	assert.Equal(t, []Move{
		{ID: 95, Name: "Hypnosis", PP: 20},
		{ID: 122, Name: "Lick", PP: 30},
	}, s.Moves)
}

func TestSummarizeDefault(t *testing.T) {
	s := Summarize(pkm.DefaultPK9())
	assert.Equal(t, "pk9", s.Format)
	assert.False(t, s.Valid)
	assert.Equal(t, "None", s.Species)
	assert.Empty(t, s.Moves)
	assert.NotNil(t, s.Moves)
}

func TestCodecs(t *testing.T) {
	pk, err := pkm.NewPK6(fixtures.DittoEncrypted)
	require.NoError(t, err)
	orig := Summarize(pk)

	for _, c := range []Codec{JSON{}, MsgPack{}} {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Marshal(orig)
			require.NoError(t, err)

			var got Summary
			require.NoError(t, c.Unmarshal(b, &got))
			assert.Equal(t, orig, got)
			assert.Equal(t, "Square", got.Shiny)
			assert.Equal(t, types.Stats{HP: 252, Def: 6, Spe: 252}, got.EVs)
		})
	}
}

func TestJSONFieldNames(t *testing.T) {
	b, err := JSON{}.Marshal(Summarize(pkm.NewPK7OrDefault(fixtures.GastlyEncrypted)))
	require.NoError(t, err)

	assert.Contains(t, string(b), `"species":"Gastly"`)
	assert.Contains(t, string(b), `"ivs":{"hp":26,"atk":19,"def":10,"spe":26,"spa":25,"spd":17}`)
	assert.NotContains(t, string(b), `"ht_name"`)
}

func TestCodecByName(t *testing.T) {
	c, err := CodecByName("MSGPACK")
	require.NoError(t, err)
	assert.Equal(t, "msgpack", c.Name())

	_, err = CodecByName("xml")
	assert.Error(t, err)
	assert.Equal(t, "json", Default.Name())
}
