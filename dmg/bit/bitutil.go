package bit

// Combine joins two bytes into a word, high byte first.
func Combine(high, low uint8) uint16 {
	return (uint16(high) << 8) | uint16(low)
}

// Low returns the least significant byte of a word.
func Low(value uint16) uint8 {
	return uint8(value)
}

// High returns the most significant byte of a word.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}

// IsSet reports whether the bit at index is 1.
func IsSet(index, value uint8) bool {
	return ((value >> index) & 1) == 1
}

// Set returns value with the bit at index set to 1.
func Set(index, value uint8) uint8 {
	return value | (1 << index)
}

// Reset returns value with the bit at index set to 0.
func Reset(index, value uint8) uint8 {
	return value &^ (1 << index)
}

// SetTo sets or resets the bit at index depending on on.
func SetTo(index, value uint8, on bool) uint8 {
	if on {
		return Set(index, value)
	}
	return Reset(index, value)
}

// Value returns 1 if the bit at index is set, 0 otherwise.
func Value(index, value uint8) uint8 {
	return (value >> index) & 1
}

// AddSigned adds a two's complement byte offset to a word, wrapping around.
func AddSigned(value uint16, offset uint8) uint16 {
	return uint16(int32(value) + int32(int8(offset)))
}
