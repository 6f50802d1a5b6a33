package pkm

// Record encode/decode against the fixed byte layout in layout.go.

import "encoding/binary"

var le = binary.LittleEndian

// Encode serializes r into a fresh RecordLen-byte buffer, recomputing the
// checksum after all content fields are written. It returns a
// ValidationError if any bounded field is out of range or any nonzero code
// is missing from its table.
func Encode(r Record, tables Codebook) ([]byte, error) {
	if err := r.validate(tables); err != nil {
		return nil, err
	}

	buf := make([]byte, RecordLen)

	le.PutUint32(buf[offEncryptionConstant:], r.EncryptionConstant)
	le.PutUint16(buf[offSanity:], r.Sanity)
	le.PutUint16(buf[offSpecies:], r.Species)
	le.PutUint16(buf[offHeldItem:], r.HeldItem)
	le.PutUint16(buf[offTID:], r.TID)
	le.PutUint16(buf[offSID:], r.SID)
	le.PutUint32(buf[offEXP:], r.EXP)
	le.PutUint16(buf[offAbility:], r.Ability)

	abilityBits := r.AbilityNumber & 7
	if r.CanGigantamax {
		abilityBits |= 1 << 4
	}
	buf[offAbilityBits] = abilityBits

	le.PutUint32(buf[offPID:], r.PID)
	buf[offNature] = r.Nature
	buf[offStatNature] = r.StatNature
	buf[offGenderBits] = r.Gender << 2
	buf[offForm] = r.Form

	for i, ev := range r.EVs {
		buf[offEVs+i] = uint8(ev)
	}

	if err := encodeText(buf[offNickname:], r.Nickname, nameUnits, "nickname"); err != nil {
		return nil, err
	}

	for i, m := range r.Moves {
		le.PutUint16(buf[offMoves+2*i:], m)
	}
	copy(buf[offMovePP:], r.MovePP[:])
	copy(buf[offMovePPUps:], r.MovePPUps[:])

	le.PutUint32(buf[offIVWord:], packIVs(r.IVs, r.IsEgg, r.IsNicknamed))

	if err := encodeText(buf[offHandlerName:], r.HandlerName, nameUnits, "handler name"); err != nil {
		return nil, err
	}
	le.PutUint16(buf[offLanguage:], r.Language)
	if err := encodeText(buf[offOTName:], r.OTName, nameUnits, "trainer name"); err != nil {
		return nil, err
	}

	buf[offFriendship] = r.Friendship
	le.PutUint16(buf[offEggLocation:], r.EggLocation)
	le.PutUint16(buf[offMetLocation:], r.MetLocation)
	buf[offBall] = r.Ball
	buf[offMetBits] = r.MetLevel&0x7F | r.OTGender<<7

	buf[offLevel] = r.Level
	for i, st := range r.Stats {
		le.PutUint16(buf[offStats+2*i:], st)
	}

	le.PutUint16(buf[offChecksum:], recordChecksum(buf))

	return buf, nil
}

// Decode parses a RecordLen-byte buffer into a Record. It fails closed:
// FormatError for a wrong-sized buffer, ChecksumError when the stored
// checksum does not match the recomputed one.
func Decode(data []byte) (Record, error) {
	r, verified, err := DecodeLenient(data)
	if err != nil {
		return Record{}, err
	}
	if !verified {
		return Record{}, ChecksumError{
			Stored:   le.Uint16(data[offChecksum:]),
			Computed: recordChecksum(data),
		}
	}
	return r, nil
}

// DecodeLenient parses the buffer even when the checksum does not match,
// for forensic inspection of corrupted records. verified reports whether
// the stored checksum matched. The length guard still applies.
//
// Decoded fields mirror the stored bytes without normalization, so a
// record holding values Encode would reject (gender bits of 3, say) is
// readable here but will not re-encode until the field is corrected.
func DecodeLenient(data []byte) (r Record, verified bool, err error) {
	if len(data) != RecordLen {
		return Record{}, false, FormatError{Length: len(data)}
	}

	verified = le.Uint16(data[offChecksum:]) == recordChecksum(data)

	r.EncryptionConstant = le.Uint32(data[offEncryptionConstant:])
	r.Sanity = le.Uint16(data[offSanity:])
	r.Species = le.Uint16(data[offSpecies:])
	r.HeldItem = le.Uint16(data[offHeldItem:])
	r.TID = le.Uint16(data[offTID:])
	r.SID = le.Uint16(data[offSID:])
	r.EXP = le.Uint32(data[offEXP:])
	r.Ability = le.Uint16(data[offAbility:])
	r.AbilityNumber = data[offAbilityBits] & 7
	r.CanGigantamax = data[offAbilityBits]&(1<<4) != 0
	r.PID = le.Uint32(data[offPID:])
	r.Nature = data[offNature]
	r.StatNature = data[offStatNature]
	r.Gender = data[offGenderBits] >> 2 & 3
	r.Form = data[offForm]

	for i := range r.EVs {
		r.EVs[i] = uint16(data[offEVs+i])
	}

	r.Nickname = decodeText(data[offNickname:], nameUnits)

	for i := range r.Moves {
		r.Moves[i] = le.Uint16(data[offMoves+2*i:])
	}
	copy(r.MovePP[:], data[offMovePP:offMovePP+4])
	copy(r.MovePPUps[:], data[offMovePPUps:offMovePPUps+4])

	r.IVs, r.IsEgg, r.IsNicknamed = unpackIVs(le.Uint32(data[offIVWord:]))

	r.HandlerName = decodeText(data[offHandlerName:], nameUnits)
	r.Language = le.Uint16(data[offLanguage:])
	r.OTName = decodeText(data[offOTName:], nameUnits)

	r.Friendship = data[offFriendship]
	r.EggLocation = le.Uint16(data[offEggLocation:])
	r.MetLocation = le.Uint16(data[offMetLocation:])
	r.Ball = data[offBall]
	r.MetLevel = data[offMetBits] & 0x7F
	r.OTGender = data[offMetBits] >> 7

	r.Level = data[offLevel]
	for i := range r.Stats {
		r.Stats[i] = le.Uint16(data[offStats+2*i:])
	}

	return r, verified, nil
}

// StoredChecksum returns the checksum field of an encoded record without
// decoding it. It fails with FormatError on a wrong-sized buffer.
func StoredChecksum(data []byte) (uint16, error) {
	if len(data) != RecordLen {
		return 0, FormatError{Length: len(data)}
	}
	return le.Uint16(data[offChecksum:]), nil
}
