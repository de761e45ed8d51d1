// Package summary flattens a decoded record into a plain struct that can be
// exported with any Codec.
package summary

import (
	"github.com/ssargent/pkx/pkg/pkm"
	"github.com/ssargent/pkx/pkg/types"
)

// Move is one filled move slot.
type Move struct {
	ID    uint16 `json:"id" msgpack:"id"`
	Name  string `json:"name" msgpack:"name"`
	PP    uint8  `json:"pp" msgpack:"pp"`
	PPUps uint8  `json:"pp_ups" msgpack:"pp_ups"`
}

// Summary is a point-in-time view of a record. Categorical fields carry their
// names; raw codes are kept where the name alone is lossy.
type Summary struct {
	Format    string `json:"format" msgpack:"format"`
	Valid     bool   `json:"valid" msgpack:"valid"`
	Party     bool   `json:"party" msgpack:"party"`
	SpeciesID uint16 `json:"species_id" msgpack:"species_id"`
	Species   string `json:"species" msgpack:"species"`
	Form      uint16 `json:"form" msgpack:"form"`
	Nickname  string `json:"nickname" msgpack:"nickname"`
	Egg       bool   `json:"egg" msgpack:"egg"`

	PID         uint32      `json:"pid" msgpack:"pid"`
	Shiny       string      `json:"shiny" msgpack:"shiny"`
	Nature      string      `json:"nature" msgpack:"nature"`
	Gender      string      `json:"gender" msgpack:"gender"`
	Ability     string      `json:"ability" msgpack:"ability"`
	AbilitySlot string      `json:"ability_slot" msgpack:"ability_slot"`
	HeldItem    uint16      `json:"held_item" msgpack:"held_item"`
	Ball        string      `json:"ball" msgpack:"ball"`
	MetLevel    uint8       `json:"met_level" msgpack:"met_level"`
	Exp         uint32      `json:"exp" msgpack:"exp"`
	Language    string      `json:"language" msgpack:"language"`
	OTName      string      `json:"ot_name" msgpack:"ot_name"`
	OTGender    string      `json:"ot_gender" msgpack:"ot_gender"`
	TID         uint16      `json:"tid" msgpack:"tid"`
	SID         uint16      `json:"sid" msgpack:"sid"`
	HTName      string      `json:"ht_name,omitempty" msgpack:"ht_name,omitempty"`
	Friendship  uint8       `json:"friendship" msgpack:"friendship"`
	Moves       []Move      `json:"moves" msgpack:"moves"`
	IVs         types.Stats `json:"ivs" msgpack:"ivs"`
	IVTotal     int         `json:"iv_total" msgpack:"iv_total"`
	EVs         types.Stats `json:"evs" msgpack:"evs"`
	EVTotal     int         `json:"ev_total" msgpack:"ev_total"`
	HiddenPower string      `json:"hidden_power" msgpack:"hidden_power"`
}

// Summarize reads every exported field from pk. Empty move slots are skipped.
func Summarize(pk pkm.Pkx) Summary {
	s := Summary{
		Format:      pk.Format().String(),
		Valid:       pk.IsValid(),
		Party:       pk.IsParty(),
		SpeciesID:   pk.SpeciesID(),
		Species:     pk.Species().String(),
		Form:        pk.Form(),
		Nickname:    pk.Nickname(),
		Egg:         pk.IsEgg(),
		PID:         pk.PID(),
		Shiny:       pk.ShinyType().String(),
		Nature:      pk.Nature().String(),
		Gender:      pk.Gender().String(),
		Ability:     pk.Ability().String(),
		AbilitySlot: pk.AbilityNumber().String(),
		HeldItem:    pk.HeldItem(),
		Ball:        pk.Ball().String(),
		MetLevel:    pk.MetLevel(),
		Exp:         pk.Exp(),
		Language:    pk.Language().String(),
		OTName:      pk.OTName(),
		OTGender:    pk.OTGender().String(),
		TID:         pk.TID16(),
		SID:         pk.SID16(),
		HTName:      pk.HTName(),
		Friendship:  pk.CurrentFriendship(),
		Moves:       []Move{},
		IVs:         pk.IVs(),
		IVTotal:     pk.IVs().Total(),
		EVs:         pk.EVs(),
		EVTotal:     pk.EVs().Total(),
		HiddenPower: pk.HiddenPowerType().String(),
	}

	for slot := 1; slot <= 4; slot++ {
		id := pk.MoveID(slot)
		if id == 0 {
			continue
		}
		s.Moves = append(s.Moves, Move{
			ID:    id,
			Name:  pk.Move(slot).String(),
			PP:    pk.MovePP(slot),
			PPUps: pk.MovePPUps(slot),
		})
	}
	return s
}
