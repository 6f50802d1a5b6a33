package pkm

// Byte layout of the 344-byte stored record. All multi-byte integers are
// little-endian. A single wrong offset silently shifts every later field,
// so changes here must be checked against a known-good record.

// RecordLen is the exact size of one stored record.
const RecordLen = 344

const (
	offEncryptionConstant = 0x00 // u32, zero for this revision
	offSanity             = 0x04 // u16, zero for this revision
	offChecksum           = 0x06 // u16, sum of words over the checksummed span
	offSpecies            = 0x08 // u16
	offHeldItem           = 0x0A // u16
	offTID                = 0x0C // u16
	offSID                = 0x0E // u16
	offEXP                = 0x10 // u32
	offAbility            = 0x14 // u16
	offAbilityBits        = 0x16 // u8: bits 0-2 ability number, bit 4 Gigantamax
	offPID                = 0x1C // u32
	offNature             = 0x20 // u8
	offStatNature         = 0x21 // u8
	offGenderBits         = 0x22 // u8: bits 2-3 gender
	offForm               = 0x24 // u8
	offEVs                = 0x26 // 6 x u8
	offNickname           = 0x58 // 13 x u16 text block
	offMoves              = 0x72 // 4 x u16
	offMovePP             = 0x7A // 4 x u8
	offMovePPUps          = 0x7E // 4 x u8
	offIVWord             = 0x8C // u32, bit-packed, see ivs.go
	offHandlerName        = 0xA8 // 13 x u16 text block
	offLanguage           = 0xE2 // u16
	offOTName             = 0xF8 // 13 x u16 text block
	offFriendship         = 0x112 // u8
	offEggLocation        = 0x120 // u16
	offMetLocation        = 0x122 // u16
	offBall               = 0x124 // u8
	offMetBits            = 0x125 // u8: bits 0-6 met level, bit 7 OT gender
	offLevel              = 0x148 // u8
	offStats              = 0x14A // 6 x u16: HP, Atk, Def, Spe, SpA, SpD
)

// The checksum covers every byte after the 8-byte header, i.e.
// [ChecksumSpanStart, RecordLen). The stored checksum at offChecksum is
// excluded by construction.
const ChecksumSpanStart = 0x08

const (
	// nameUnits is the width of a text block in 16-bit code units,
	// including room for the terminator.
	nameUnits = 13

	// MaxNameLen is the longest name Encode accepts without truncation.
	// One unit is always reserved for the terminator.
	MaxNameLen = nameUnits - 1
)
