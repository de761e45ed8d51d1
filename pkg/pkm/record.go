package pkm

import (
	"github.com/ssargent/pkx/pkg/reader"
	"github.com/ssargent/pkx/pkg/types"
)

// record holds a decrypted buffer and the layout used to read it. Generation
// types embed it to pick up the shared Pkx methods.
type record struct {
	data   []byte
	layout *layout
}

// newRecord validates the length of data, decrypts it when the marker heuristic
// says it is enciphered and keeps a private copy.
func newRecord(l *layout, data []byte) (record, error) {
	buf, err := l.geometry.DecryptIfNeeded(data)
	if err != nil {
		return record{}, err
	}
	return record{data: buf, layout: l}, nil
}

func defaultRecord(l *layout) record {
	return record{data: make([]byte, l.geometry.StoredSize), layout: l}
}

func (r record) u8(f field) uint8   { return uint8(f.read(r.data)) }
func (r record) u16(f field) uint16 { return uint16(f.read(r.data)) }

func (r record) Format() Format { return r.layout.format }

func (r record) EncryptionConstant() uint32 { return reader.U32(r.data, 0) }
func (r record) Sanity() uint16             { return r.u16(r.layout.sanity) }
func (r record) Checksum() uint16           { return r.u16(r.layout.checksum) }

// CalculatedChecksum recomputes the checksum over the stored region.
func (r record) CalculatedChecksum() uint16 { return r.layout.geometry.Checksum(r.data) }

func (r record) ValidChecksum() bool { return r.Checksum() == r.CalculatedChecksum() }

func (r record) SpeciesID() uint16      { return r.u16(r.layout.species) }
func (r record) HeldItem() uint16       { return r.u16(r.layout.heldItem) }
func (r record) TID16() uint16          { return r.u16(r.layout.tid) }
func (r record) SID16() uint16          { return r.u16(r.layout.sid) }
func (r record) Exp() uint32            { return r.layout.exp.read(r.data) }
func (r record) AbilityID() uint16      { return r.u16(r.layout.ability) }
func (r record) AbilityNumberID() uint8 { return r.u8(r.layout.abilityNumber) }
func (r record) PID() uint32            { return r.layout.pid.read(r.data) }
func (r record) NatureID() uint8        { return r.u8(r.layout.nature) }
func (r record) StatNatureID() uint8    { return r.u8(r.layout.statNature) }
func (r record) GenderID() uint8        { return r.u8(r.layout.gender) }
func (r record) Form() uint16           { return r.u16(r.layout.form) }

func (r record) EVHP() uint8  { return reader.U8(r.data, r.layout.evs) }
func (r record) EVAtk() uint8 { return reader.U8(r.data, r.layout.evs+1) }
func (r record) EVDef() uint8 { return reader.U8(r.data, r.layout.evs+2) }
func (r record) EVSpe() uint8 { return reader.U8(r.data, r.layout.evs+3) }
func (r record) EVSpA() uint8 { return reader.U8(r.data, r.layout.evs+4) }
func (r record) EVSpD() uint8 { return reader.U8(r.data, r.layout.evs+5) }

// MoveID returns the move in slot 1-4, or 0 for any other slot.
func (r record) MoveID(slot int) uint16 {
	if !validSlot(slot) {
		return 0
	}
	return reader.U16(r.data, r.layout.moves+2*(slot-1))
}

func (r record) MovePP(slot int) uint8 {
	if !validSlot(slot) {
		return 0
	}
	return reader.U8(r.data, r.layout.pp+slot-1)
}

func (r record) MovePPUps(slot int) uint8 {
	if !validSlot(slot) {
		return 0
	}
	return reader.U8(r.data, r.layout.ppUps+slot-1)
}

func validSlot(slot int) bool { return slot >= 1 && slot <= 4 }

func (r record) IV32() uint32          { return r.layout.iv32.read(r.data) }
func (r record) CurrentHandler() uint8 { return r.u8(r.layout.currentHandler) }
func (r record) HTFriendship() uint8   { return r.u8(r.layout.htFriendship) }
func (r record) OTFriendship() uint8   { return r.u8(r.layout.otFriendship) }
func (r record) BallID() uint8         { return r.u8(r.layout.ball) }
func (r record) MetLevel() uint8       { return r.u8(r.layout.metLevel) }
func (r record) OTGenderID() uint8     { return r.u8(r.layout.otGender) }
func (r record) LanguageID() uint8     { return r.u8(r.layout.language) }

// StatusCondition reads zero for stored records whose status lives in the party region.
func (r record) StatusCondition() uint32 { return r.layout.status.read(r.data) }

func (r record) Nickname() string { return r.layout.name(r.data, r.layout.nickname) }
func (r record) OTName() string   { return r.layout.name(r.data, r.layout.otName) }
func (r record) HTName() string   { return r.layout.name(r.data, r.layout.htName) }

// TSV is the trainer shiny value.
func (r record) TSV() uint16 { return (r.TID16() ^ r.SID16()) >> 4 }

// PSV is the personality shiny value.
func (r record) PSV() uint16 { return pidXor(r.PID()) >> 4 }

// ShinyXor is TSV ^ PSV, the value ShinyType classifies.
func (r record) ShinyXor() uint16 { return r.TSV() ^ r.PSV() }

func pidXor(pid uint32) uint16 { return uint16(pid>>16) ^ uint16(pid) }

// ShinyType is None for records that fail validation.
func (r record) ShinyType() types.Shiny {
	if !r.IsValid() {
		return types.ShinyNone
	}
	return types.ShinyFromXor(r.ShinyXor())
}

func (r record) IsShiny() bool { return r.IsValid() && r.TSV() == r.PSV() }

// IsValid requires a zero sanity word, a matching checksum and a known species.
func (r record) IsValid() bool {
	return r.Sanity() == 0 && r.ValidChecksum() && r.Species() != types.SpeciesNone
}

func (r record) IsEgg() bool       { return r.IV32()>>30&1 == 1 }
func (r record) IsNicknamed() bool { return r.IV32()>>31&1 == 1 }

func (r record) IVs() types.Stats { return types.UnpackIVs(r.IV32()) }
func (r record) IVHP() uint8      { return r.IVs().HP }
func (r record) IVAtk() uint8     { return r.IVs().Atk }
func (r record) IVDef() uint8     { return r.IVs().Def }
func (r record) IVSpe() uint8     { return r.IVs().Spe }
func (r record) IVSpA() uint8     { return r.IVs().SpA }
func (r record) IVSpD() uint8     { return r.IVs().SpD }

func (r record) EVs() types.Stats {
	return types.Stats{
		HP:  r.EVHP(),
		Atk: r.EVAtk(),
		Def: r.EVDef(),
		Spe: r.EVSpe(),
		SpA: r.EVSpA(),
		SpD: r.EVSpD(),
	}
}

func (r record) HiddenPowerIndex() uint8 { return r.IVs().HiddenPowerIndex() }

func (r record) HiddenPowerType() types.HiddenPower {
	return types.HiddenPowerFromCode(r.HiddenPowerIndex())
}

// CurrentFriendship follows whoever holds the creature right now.
func (r record) CurrentFriendship() uint8 {
	if r.CurrentHandler() == 0 {
		return r.OTFriendship()
	}
	return r.HTFriendship()
}

func (r record) Species() types.Species { return types.SpeciesFromCode(r.SpeciesID()) }
func (r record) Move(slot int) types.Move {
	return types.MoveFromCode(r.MoveID(slot))
}

func (r record) Moves() [4]types.Move {
	return [4]types.Move{r.Move(1), r.Move(2), r.Move(3), r.Move(4)}
}

func (r record) Ability() types.Ability { return types.AbilityFromCode(r.AbilityID()) }
func (r record) AbilityNumber() types.AbilityNumber {
	return types.AbilityNumberFromCode(r.AbilityNumberID())
}
func (r record) Nature() types.Nature       { return types.NatureFromCode(r.NatureID()) }
func (r record) StatNature() types.Nature   { return types.NatureFromCode(r.StatNatureID()) }
func (r record) Gender() types.Gender       { return types.GenderFromCode(r.GenderID()) }
func (r record) OTGender() types.Gender     { return types.GenderFromCode(r.OTGenderID()) }
func (r record) Language() types.Language   { return types.LanguageFromCode(r.LanguageID()) }
func (r record) Ball() types.Ball           { return types.BallFromCode(r.BallID()) }
func (r record) IsParty() bool              { return len(r.data) == r.layout.geometry.PartySize }

func (r record) Bytes() []byte {
	out := make([]byte, len(r.data))
	copy(out, r.data)
	return out
}

// Encrypted returns nil only if the record was built without a valid length,
// which the constructors never allow.
func (r record) Encrypted() []byte {
	out, err := r.layout.geometry.Encrypt(r.data)
	if err != nil {
		return nil
	}
	return out
}
