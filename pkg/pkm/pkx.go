package pkm

import "github.com/ssargent/pkx/pkg/types"

// Pkx is the read-only view shared by every record generation.
type Pkx interface {
	Format() Format

	EncryptionConstant() uint32
	Sanity() uint16
	Checksum() uint16
	CalculatedChecksum() uint16
	ValidChecksum() bool
	SpeciesID() uint16
	HeldItem() uint16
	TID16() uint16
	SID16() uint16
	Exp() uint32
	AbilityID() uint16
	AbilityNumberID() uint8
	PID() uint32
	NatureID() uint8
	StatNatureID() uint8
	GenderID() uint8
	Form() uint16
	EVHP() uint8
	EVAtk() uint8
	EVDef() uint8
	EVSpe() uint8
	EVSpA() uint8
	EVSpD() uint8
	MoveID(slot int) uint16
	MovePP(slot int) uint8
	MovePPUps(slot int) uint8
	IV32() uint32
	CurrentHandler() uint8
	HTFriendship() uint8
	OTFriendship() uint8
	BallID() uint8
	MetLevel() uint8
	OTGenderID() uint8
	LanguageID() uint8
	StatusCondition() uint32
	Nickname() string
	OTName() string
	HTName() string

	TSV() uint16
	PSV() uint16
	ShinyXor() uint16
	ShinyType() types.Shiny
	IsShiny() bool
	IsValid() bool
	IsEgg() bool
	IsNicknamed() bool
	IVHP() uint8
	IVAtk() uint8
	IVDef() uint8
	IVSpe() uint8
	IVSpA() uint8
	IVSpD() uint8
	IVs() types.Stats
	EVs() types.Stats
	HiddenPowerIndex() uint8
	HiddenPowerType() types.HiddenPower
	CurrentFriendship() uint8

	Species() types.Species
	Move(slot int) types.Move
	Moves() [4]types.Move
	Ability() types.Ability
	AbilityNumber() types.AbilityNumber
	Nature() types.Nature
	StatNature() types.Nature
	Gender() types.Gender
	OTGender() types.Gender
	Language() types.Language
	Ball() types.Ball

	// Bytes returns a copy of the decrypted buffer.
	Bytes() []byte
	// Encrypted returns a copy of the buffer in its stored, enciphered form.
	Encrypted() []byte
	IsParty() bool
}
