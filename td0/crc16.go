// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted); grounded on
// _examples/original_source/src/td0.rs's crc16.

package td0

// crc16 computes the Teledisk header checksum: a bit-shifting CRC-16 with
// polynomial 0xA097, distinct from the reflected, table-driven CRC-16/ARC
// (poly 0xA001) used elsewhere in the archive ecosystem.
func crc16(seed uint16, buf []byte) uint16 {
	crc := seed
	for _, b := range buf {
		crc ^= uint16(b) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0xa097
			} else {
				crc = crc << 1
			}
		}
	}
	return crc
}
