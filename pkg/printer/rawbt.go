package printer

import "encoding/base64"

// RawBTScheme is the custom URL scheme handled by the RawBT thermal
// printer app on the cashier's Android device.
const RawBTScheme = "rawbt"

// RawBTLink wraps a receipt payload in a rawbt: deep link. The payload is
// base64-encoded verbatim; the handler app decodes and prints it as-is, so
// the byte sequence produced here is the printing contract.
func RawBTLink(payload []byte) string {
	return RawBTScheme + ":base64," + base64.StdEncoding.EncodeToString(payload)
}
