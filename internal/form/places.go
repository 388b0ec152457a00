package form

import "strings"

// Municipalities maps each supported municipality to its barangays.
var Municipalities = map[string][]string{
	"San Fernando": {
		"Abut", "Apaleng", "Bacsil", "Baraoas", "Bato", "Cabaroan", "Cabarsican",
		"Cadacad", "Cagayaoan", "Calabugao", "Camansi", "Canaoay", "Carlatan",
		"Catbangen", "Dallangayan", "Dalumpinas", "Ilocanos Sur", "Ilocanos Norte",
		"Langiden", "Lingsat", "Mameltac", "Masicong", "Nagyubuyuban", "Namtutan",
		"Narra", "Paagan", "Pagdalagan", "Pagdaraoan", "Pagbangkeruan",
		"Paguudpudan", "Pao Norte", "Pao Sur", "Paratong", "Pias", "Poro",
		"Sacyud", "Sagayad", "San Agustin", "San Francisco", "San Vicente",
		"Santiago", "Saoay", "Sevilla", "Siboan", "Taboc", "Tanqui", "Tanquigan",
	},
}

// KnownBarangay reports whether barangay belongs to municipality. Municipalities
// without a barangay list accept any name.
func KnownBarangay(municipality, barangay string) bool {
	list, ok := Municipalities[strings.TrimSpace(municipality)]
	if !ok {
		return true
	}
	for _, b := range list {
		if strings.EqualFold(b, strings.TrimSpace(barangay)) {
			return true
		}
	}
	return false
}
