package handlers

import (
	"encoding/json"
	"net/http"

	"scheduleorganizer/internal/schema"
)

type vocabularyResponse struct {
	Carriers []schema.CarrierCode `json:"carriers"`
	Ports    []portEntry          `json:"ports"`
}

type portEntry struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// VocabularyHandler serves the built-in carrier and port vocabulary that
// upload forms present as choices. The carrier list includes OTHER for
// sources outside the known set.
func VocabularyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ports := make([]portEntry, 0, len(schema.CommonPorts))
		for _, name := range schema.CommonPorts {
			ports = append(ports, portEntry{
				Name: schema.DisplayPortName(name),
				Code: schema.PortCode(name),
			})
		}
		_ = json.NewEncoder(w).Encode(vocabularyResponse{
			Carriers: schema.Carriers,
			Ports:    ports,
		})
	})
}
