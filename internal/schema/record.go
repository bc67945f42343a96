package schema

import (
	"strconv"
	"strings"
)

// ScheduleRecord is the canonical shape for one sailing leg of one carrier.
// Every field is always present; unknown values are empty strings, never absent.
type ScheduleRecord struct {
	Carrier     string `json:"carrier" csv:"CARRIER"`
	Pol         string `json:"pol" csv:"POL"`
	Pod         string `json:"pod" csv:"POD"`
	Vessel      string `json:"vessel" csv:"Vessel" validate:"required"`
	Voyage      string `json:"voyage" csv:"Voyage"`
	Etd         string `json:"etd" csv:"ETD" validate:"omitempty,isCanonicalDate"`
	Eta         string `json:"eta" csv:"ETA" validate:"omitempty,isCanonicalDate"`
	TransitTime string `json:"transit_time" csv:"T/T Time"`
	CyCutoff    string `json:"cy_cutoff" csv:"CY Cut-off"`
	SiCutoff    string `json:"si_cutoff" csv:"SI Cut-off"`
}

// IsValid reports whether the record qualifies for the merged dataset.
// A non-empty vessel is the minimal validity predicate.
func (r *ScheduleRecord) IsValid() bool {
	return strings.TrimSpace(r.Vessel) != ""
}

// NaturalKey identifies one sailing leg for dedup purposes. Two records with
// the same key refer to the same sailing; the later write wins.
func (r *ScheduleRecord) NaturalKey() string {
	return strings.Join([]string{r.Carrier, r.Pol, r.Pod, r.Vessel, r.Voyage, r.Etd}, "|")
}

// ExportColumns is the fixed column order of every exported sheet.
var ExportColumns = []string{"CARRIER", "POL", "POD", "Vessel", "Voyage", "ETD", "ETA", "T/T Time", "CY Cut-off", "SI Cut-off"}

// ExportRow renders the record in ExportColumns order.
func (r *ScheduleRecord) ExportRow() []string {
	return []string{r.Carrier, r.Pol, r.Pod, r.Vessel, r.Voyage, r.Etd, r.Eta, r.TransitTime, r.CyCutoff, r.SiCutoff}
}

// recordAliases maps every canonical field to the spellings collaborators are
// known to use. For each field the first non-empty candidate wins.
var recordAliases = [][]string{
	{"CARRIER", "carrier"},
	{"POL", "pol", "origin"},
	{"POD", "pod", "destination"},
	{"Vessel", "vessel", "VESSEL", "ship"},
	{"Voyage", "voyage", "VOYAGE", "voy"},
	{"ETD", "etd", "departure"},
	{"ETA", "eta", "arrival"},
	{"T/T Time", "transit_time", "T/T", "transit"},
	{"CY Cut-off", "cy_cutoff", "CY", "cy"},
	{"SI Cut-off", "si_cutoff", "SI", "si", "doc_cutoff"},
}

// FromAliases normalizes a loosely-typed row (typically decoded from a
// collaborator's JSON response) into a ScheduleRecord.
func FromAliases(row map[string]any) ScheduleRecord {
	pick := func(keys []string) string {
		for _, k := range keys {
			if v, ok := row[k]; ok {
				s := strings.TrimSpace(toString(v))
				if s != "" {
					return s
				}
			}
		}
		return ""
	}
	return ScheduleRecord{
		Carrier:     pick(recordAliases[0]),
		Pol:         pick(recordAliases[1]),
		Pod:         pick(recordAliases[2]),
		Vessel:      pick(recordAliases[3]),
		Voyage:      pick(recordAliases[4]),
		Etd:         pick(recordAliases[5]),
		Eta:         pick(recordAliases[6]),
		TransitTime: pick(recordAliases[7]),
		CyCutoff:    pick(recordAliases[8]),
		SiCutoff:    pick(recordAliases[9]),
	}
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// JSON numbers decode as float64; transit days arrive this way.
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}
