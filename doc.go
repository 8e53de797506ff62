// Package ogres provides a pure-Go implementation of the OGRES layered image container.
//
// An OGRES file concatenates several uncompressed BGR rasters. It starts with an 11-byte
// header (the "OGRES" signature, a 16-bit layer count and a 32-bit payload size) followed by
// one record per layer: width, height and record size as 16-bit little-endian values, then
// width*height*3 bytes of pixel data. Alpha is never stored.
package ogres
