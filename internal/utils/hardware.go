package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"strings"
)

// GetTerminalID reads the physical MAC address of the machine and hashes it
// into a clean, stable terminal identifier like "POS-A1B2C3D4". Reports and
// support requests reference this ID to tell registers apart.
func GetTerminalID() string {
	interfaces, err := net.Interfaces()
	if err != nil {
		return "UNKNOWN-TERMINAL"
	}

	var macAddress string
	for _, i := range interfaces {
		// First active physical network interface wins
		if i.Flags&net.FlagUp != 0 && len(i.HardwareAddr) > 0 {
			macAddress = i.HardwareAddr.String()
			break
		}
	}

	if macAddress == "" {
		return "UNKNOWN-TERMINAL"
	}

	hash := sha256.Sum256([]byte(macAddress + "BODEGA-POS-TERMINAL"))
	hashString := hex.EncodeToString(hash[:])

	return "POS-" + strings.ToUpper(hashString[:8])
}
