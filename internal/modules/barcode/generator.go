// Package barcode derives and resolves the short numeric codes printed on
// product labels. A code is a pure function of (product id, size label); no
// mapping table is ever stored, so the derivation must stay byte-for-byte
// stable: labels already printed with an earlier code must keep scanning.
package barcode

import (
	"strconv"
	"unicode/utf16"
)

// ShortCode derives the scan-gun code for a (product, size) pair: a decimal
// string of 4 to 6 digits.
//
// The derivation is fixed for label compatibility:
//
//  1. combined key "<productID>:SIZE:<size>:<size length>"
//  2. polynomial rolling hash h = h*31 + c over the key's UTF-16 code units,
//     wrapping in 32-bit signed arithmetic
//  3. size offset: sum of the size's UTF-16 code units, times 1000, added to
//     the hash in 64-bit arithmetic
//  4. absolute value, decimal, first 6 digits, left-padded with zeros to 4
//
// Distinct pairs may collide; that weakness is part of the printed-label
// contract and must not be corrected here.
func ShortCode(productID, size string) string {
	sizeUnits := utf16.Encode([]rune(size))
	combined := productID + ":SIZE:" + size + ":" + strconv.Itoa(len(sizeUnits))

	var h int32
	for _, c := range utf16.Encode([]rune(combined)) {
		h = h*31 + int32(c)
	}

	var offset int64
	for _, c := range sizeUnits {
		offset += int64(c)
	}

	total := int64(h) + offset*1000
	if total < 0 {
		total = -total
	}

	code := strconv.FormatInt(total, 10)
	if len(code) > 6 {
		code = code[:6]
	}
	for len(code) < 4 {
		code = "0" + code
	}
	return code
}
