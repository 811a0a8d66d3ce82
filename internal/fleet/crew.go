// Crew generation. Crews come from a single hometown so that a boat
// lost at sea hits one community, as it did historically.
package fleet

import (
	"fmt"

	"github.com/talgya/togaraveldi/internal/entropy"
)

// CrewMember is one crewman with a share of the crew pot.
type CrewMember struct {
	Name       string
	Role       string
	Hometown   string
	FamilyName string
	Share      float64
	Experience int
}

// Hometowns a crew can hail from.
var Hometowns = []string{
	"Reykjavík",
	"Vestmannaeyjar",
	"Ísafjörður",
	"Akureyri",
	"Grindavík",
	"Bolungarvík",
	"Siglufjörður",
}

var firstNames = []string{
	"Jón", "Guðmundur", "Sigurður", "Gunnar", "Ólafur",
	"Einar", "Kristján", "Magnús", "Björn", "Þór",
	"Helgi", "Hafsteinn", "Ragnar", "Vilhjálmur", "Baldur",
}

var familyNamesByHometown = map[string][]string{
	"Vestmannaeyjar": {"Sigurðsson", "Jónsson", "Pétursson", "Einarsson"},
	"Ísafjörður":     {"Ólafsson", "Gunnarsson", "Þórðarson", "Magnússon"},
	"Reykjavík":      {"Árnason", "Kristjánsson", "Guðmundsson", "Stefánsson"},
	"Grindavík":      {"Halldórsson", "Jóhannesson", "Björnsson", "Elíasson"},
	"Akureyri":       {"Pálsson", "Helgason", "Ragnarsson", "Ingólfsson"},
	"Bolungarvík":    {"Friðriksson", "Oddsson", "Hannesson", "Vilhjálmsson"},
	"Siglufjörður":   {"Baldursson", "Eiríksson", "Benediktsson", "Andrésson"},
}

var roleShares = map[string]float64{
	"Captain":    2.0,
	"First Mate": 1.5,
	"Engineer":   1.2,
	"Deckhand":   1.0,
}

// GenerateCrewMember creates a random crewman from the given hometown.
func GenerateCrewMember(src entropy.Source, hometown, role string) CrewMember {
	first := firstNames[src.IntN(len(firstNames))]
	families := familyNamesByHometown[hometown]
	if len(families) == 0 {
		families = []string{"Jónsson"}
	}
	family := families[src.IntN(len(families))]

	share, ok := roleShares[role]
	if !ok {
		share = 1.0
	}

	return CrewMember{
		Name:       fmt.Sprintf("%s %s", first, family),
		Role:       role,
		Hometown:   hometown,
		FamilyName: family,
		Share:      share,
	}
}

// HireCrew staffs a boat with a captain, first mate, and two deckhands
// from one hometown, plus up to two extra deckhands whose families
// followed them aboard. An empty hometown picks one at random.
func HireCrew(src entropy.Source, b *Boat, hometown string) {
	if hometown == "" {
		hometown = Hometowns[src.IntN(len(Hometowns))]
	}
	b.Crew = []CrewMember{
		GenerateCrewMember(src, hometown, "Captain"),
		GenerateCrewMember(src, hometown, "First Mate"),
		GenerateCrewMember(src, hometown, "Deckhand"),
		GenerateCrewMember(src, hometown, "Deckhand"),
	}
	for i := 0; i < 2; i++ {
		if src.Float64() < 0.3 {
			b.Crew = append(b.Crew, GenerateCrewMember(src, hometown, "Deckhand"))
		}
	}
}

// FamilyConnections returns the family names shared by two or more
// crewmen, mapped to the members' names. Losing a boat with family
// connections aboard is a far worse tragedy than losing strangers.
func (b *Boat) FamilyConnections() map[string][]string {
	families := make(map[string][]string)
	for _, cm := range b.Crew {
		families[cm.FamilyName] = append(families[cm.FamilyName], cm.Name)
	}
	for name, members := range families {
		if len(members) < 2 {
			delete(families, name)
		}
	}
	return families
}

// CrewHometowns returns the distinct hometowns represented aboard, in
// crew order.
func (b *Boat) CrewHometowns() []string {
	seen := make(map[string]bool)
	var towns []string
	for _, cm := range b.Crew {
		if !seen[cm.Hometown] {
			seen[cm.Hometown] = true
			towns = append(towns, cm.Hometown)
		}
	}
	return towns
}

// Skipper returns the crewman with the largest share, or nil for an
// uncrewed boat.
func (b *Boat) Skipper() *CrewMember {
	var best *CrewMember
	for i := range b.Crew {
		if best == nil || b.Crew[i].Share > best.Share {
			best = &b.Crew[i]
		}
	}
	return best
}

// GainExperience logs one completed trip for every crewman aboard.
func (b *Boat) GainExperience() {
	for i := range b.Crew {
		b.Crew[i].Experience++
	}
}

// CrewExperience is the average trips per crewman, rounded down.
func (b *Boat) CrewExperience() int {
	if len(b.Crew) == 0 {
		return 0
	}
	total := 0
	for _, cm := range b.Crew {
		total += cm.Experience
	}
	return total / len(b.Crew)
}
