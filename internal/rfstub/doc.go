// Package rfstub provides simulation stand-ins for the RF transceiver and
// certification hardware the audited front end mocks.
//
// Everything here is a test double: the functions return canned data and a
// digest identifier, never real signal decoding or certification semantics.
// The audit engine itself never consults this package.
package rfstub
