package common

const (
	ZeroAddress = "0x0000000000000000000000000000000000000000"

	DefaultTokenDecimals  uint8 = 18
	DefaultMaxQueryBlocks int64 = 5000
)
