// Package servicearea answers one question: is a ZIP code inside the
// company's service territory. The territory is the static list of ZIP
// codes for the three served counties; deployments can append extras
// through configuration, never remove from the base list.
package servicearea

import "strings"

// Gate is the membership test for the service territory.
type Gate struct {
	zips map[string]struct{}
}

// NewGate builds the gate from the static county list plus any extra
// ZIP codes from configuration.
func NewGate(extraZips []string) *Gate {
	g := &Gate{zips: make(map[string]struct{}, len(servedZips)+len(extraZips))}
	for _, z := range servedZips {
		g.zips[z] = struct{}{}
	}
	for _, z := range extraZips {
		if z = canonical(z); z != "" {
			g.zips[z] = struct{}{}
		}
	}
	return g
}

// InService reports whether the ZIP is in the served territory. Only
// the first five digits matter (ZIP+4 suffixes are ignored).
func (g *Gate) InService(zip string) bool {
	z := canonical(zip)
	if z == "" {
		return false
	}
	_, ok := g.zips[z]
	return ok
}

// canonical trims a ZIP to its leading five digits, "" when malformed.
func canonical(zip string) string {
	zip = strings.TrimSpace(zip)
	if len(zip) < 5 {
		return ""
	}
	zip = zip[:5]
	for _, r := range zip {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return zip
}

// servedZips covers Norfolk, Plymouth and southern Suffolk counties.
var servedZips = []string{
	// Norfolk County
	"02169", "02170", "02171", "02184", "02185", "02186", "02187",
	"02188", "02189", "02190", "02191", "02021", "02025", "02026",
	"02030", "02032", "02035", "02052", "02054", "02056", "02062",
	"02067", "02070", "02071", "02081", "02090", "02093", "02094",
	"02269", "02322", "02343", "02368", "02445", "02446", "02447",
	"02457", "02459", "02492", "02494",
	// Plymouth County
	"02301", "02302", "02324", "02325", "02327", "02330", "02332",
	"02333", "02338", "02339", "02341", "02346", "02347", "02350",
	"02351", "02359", "02360", "02364", "02370", "02382",
	// Suffolk County (southern neighborhoods)
	"02108", "02109", "02110", "02111", "02113", "02114", "02115",
	"02116", "02118", "02119", "02120", "02121", "02122", "02124",
	"02125", "02126", "02127", "02128", "02129", "02130", "02131",
	"02132", "02134", "02135", "02136", "02151", "02152",
}
