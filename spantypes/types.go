package spantypes

// BinData is used to hold raw binary blob information for records that need to
// support encoding to and from JSON. The json handle will hexify this data for
// transport. To signal that this conversion should take place, you must use this
// named type rather than a bare []byte.
type BinData []byte
