package schema

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type CarrierCode string

const (
	CNC       CarrierCode = "CNC"
	IAL       CarrierCode = "IAL"
	KMTC      CarrierCode = "KMTC"
	SITC      CarrierCode = "SITC"
	TSL       CarrierCode = "TSL"
	YML       CarrierCode = "YML"
	COSCO     CarrierCode = "COSCO"
	EVERGREEN CarrierCode = "EVERGREEN"
	ONE       CarrierCode = "ONE"
	PIL       CarrierCode = "PIL"
	RCL       CarrierCode = "RCL"
	WHL       CarrierCode = "WHL"
	OTHER     CarrierCode = "OTHER"
)

var Carriers = []CarrierCode{CNC, IAL, KMTC, SITC, TSL, YML, COSCO, EVERGREEN, ONE, PIL, RCL, WHL, OTHER}

func IsKnownCarrier(code string) bool {
	for _, c := range Carriers {
		if string(c) == strings.ToUpper(strings.TrimSpace(code)) {
			return true
		}
	}
	return false
}

// CommonPorts is the built-in POL/POD vocabulary. A config.yaml section may
// extend it at runtime; these are the defaults shipped with the service.
var CommonPorts = []string{
	"HAIPHONG", "HO CHI MINH CITY", "DA NANG",
	"HONG KONG", "SHEKOU", "NANSHA", "GUANGZHOU",
	"KAOHSIUNG", "TAICHUNG", "KEELUNG",
	"SHANGHAI", "NINGBO", "QINGDAO", "TIANJIN",
	"YANGON", "PORT KLANG", "SINGAPORE", "BANGKOK", "LAEM CHABANG",
	"JAKARTA", "SURABAYA", "COLOMBO", "CHATTOGRAM", "BUSAN", "TOKYO",
}

var portCodes = map[string]string{
	"HAIPHONG": "HPH", "HO CHI MINH CITY": "SGN", "DA NANG": "DAD",
	"HONG KONG": "HKG", "SHEKOU": "SKU", "NANSHA": "NSA", "GUANGZHOU": "CAN",
	"KAOHSIUNG": "KHH", "TAICHUNG": "TXG", "KEELUNG": "KEL",
	"SHANGHAI": "SHA", "NINGBO": "NGB", "QINGDAO": "TAO", "TIANJIN": "TSN",
	"YANGON": "RGN", "PORT KLANG": "PKG", "SINGAPORE": "SIN",
	"BANGKOK": "BKK", "LAEM CHABANG": "LCB",
	"JAKARTA": "JKT", "SURABAYA": "SUB", "COLOMBO": "CMB",
	"CHATTOGRAM": "CGP", "BUSAN": "PUS", "TOKYO": "TYO",
}

// PortCode resolves a port display name to its 3-letter code: exact match
// first, then substring containment either direction, then the first three
// letters of the normalized name. The containment pass walks CommonPorts in
// declaration order so an ambiguous name always resolves to the same code.
func PortCode(name string) string {
	n := strings.ToUpper(strings.TrimSpace(name))
	if code, ok := portCodes[n]; ok {
		return code
	}
	for _, port := range CommonPorts {
		if strings.Contains(n, port) || strings.Contains(port, n) {
			return portCodes[port]
		}
	}
	if len(n) > 3 {
		n = n[:3]
	}
	return n
}

var monthAbbrev = [13]string{"", "JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// MonthAbbrev returns the 3-letter abbreviation for a month number, or "???"
// when the number is out of range.
func MonthAbbrev(month int) string {
	if month < 1 || month > 12 {
		return "???"
	}
	return monthAbbrev[month]
}

var titleCaser = cases.Title(language.English)

// DisplayPortName renders a port name the way exported sheets show it.
func DisplayPortName(name string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(name)))
}
