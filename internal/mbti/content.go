package mbti

// UnknownTypeDescription is returned for codes outside the 16 known types.
const UnknownTypeDescription = "Onbekend type"

// TypeProfile bundles the static descriptive text for a type code.
type TypeProfile struct {
	TypeCode        TypeCode `json:"type_code"`
	Description     string   `json:"description"`
	Strengths       []string `json:"strengths"`
	Challenges      []string `json:"challenges"`
	Recommendations []string `json:"recommendations"`
}

var profiles = map[TypeCode]TypeProfile{
	"ISTJ": {
		Description:     "De Logisticus: praktisch, feitelijk en betrouwbaar. Je houdt van orde en neemt je verplichtingen serieus.",
		Strengths:       []string{"Betrouwbaar", "Georganiseerd", "Gedetailleerd", "Plichtsgetrouw"},
		Challenges:      []string{"Kan star zijn bij verandering", "Moeite met het uiten van gevoelens", "Soms te kritisch"},
		Recommendations: []string{"Sta open voor nieuwe werkwijzen", "Deel vaker wat je voelt", "Plan bewust tijd voor ontspanning"},
	},
	"ISFJ": {
		Description:     "De Beschermer: toegewijd, warm en zorgzaam. Je staat klaar om de mensen om je heen te steunen.",
		Strengths:       []string{"Zorgzaam", "Loyaal", "Geduldig", "Oog voor detail"},
		Challenges:      []string{"Moeite met nee zeggen", "Neemt te veel op zich", "Vermijdt conflicten"},
		Recommendations: []string{"Bewaak je eigen grenzen", "Vraag om hulp wanneer nodig", "Erken je eigen behoeften"},
	},
	"INFJ": {
		Description:     "De Advocaat: idealistisch, inzichtelijk en principieel. Je zoekt betekenis en verbinding.",
		Strengths:       []string{"Inzichtelijk", "Inspirerend", "Vastberaden", "Empathisch"},
		Challenges:      []string{"Perfectionistisch", "Raakt snel overprikkeld", "Houdt veel voor zich"},
		Recommendations: []string{"Neem regelmatig tijd voor jezelf", "Stel haalbare verwachtingen", "Deel je ideeën eerder met anderen"},
	},
	"INTJ": {
		Description:     "De Architect: strategisch, onafhankelijk en vastberaden. Je ziet het grote plaatje en werkt gestructureerd naar je doelen.",
		Strengths:       []string{"Strategisch denken", "Onafhankelijk", "Doelgericht", "Analytisch"},
		Challenges:      []string{"Kan arrogant overkomen", "Ongeduldig met inefficiëntie", "Moeite met emotionele situaties"},
		Recommendations: []string{"Oefen met actief luisteren", "Waardeer de inbreng van anderen", "Geef ruimte aan gevoelens"},
	},
	"ISTP": {
		Description:     "De Virtuoos: nuchter, praktisch en nieuwsgierig. Je leert het liefst door te doen.",
		Strengths:       []string{"Probleemoplossend", "Kalm onder druk", "Flexibel", "Praktisch"},
		Challenges:      []string{"Kan afstandelijk lijken", "Verveelt snel", "Vermijdt langetermijnverplichtingen"},
		Recommendations: []string{"Communiceer je plannen met anderen", "Investeer in relaties", "Denk na over langetermijndoelen"},
	},
	"ISFP": {
		Description:     "De Avonturier: gevoelig, creatief en vriendelijk. Je leeft in het moment en volgt je eigen waarden.",
		Strengths:       []string{"Creatief", "Gevoelig", "Flexibel", "Authentiek"},
		Challenges:      []string{"Vermijdt conflicten", "Moeite met plannen", "Erg gevoelig voor kritiek"},
		Recommendations: []string{"Oefen met het uitspreken van je mening", "Werk met kleine, concrete plannen", "Zie feedback als kans om te groeien"},
	},
	"INFP": {
		Description:     "De Bemiddelaar: idealistisch, creatief en empathisch. Je laat je leiden door je waarden en zoekt harmonie.",
		Strengths:       []string{"Empathisch", "Creatief", "Idealistisch", "Open van geest"},
		Challenges:      []string{"Te idealistisch", "Neemt dingen persoonlijk", "Moeite met praktische zaken"},
		Recommendations: []string{"Zet idealen om in concrete stappen", "Zoek balans tussen dromen en doen", "Wees mild voor jezelf"},
	},
	"INTP": {
		Description:     "De Logicus: analytisch, origineel en nieuwsgierig. Je wilt begrijpen hoe dingen werken.",
		Strengths:       []string{"Analytisch", "Origineel", "Objectief", "Leergierig"},
		Challenges:      []string{"Kan afwezig lijken", "Stelt zaken uit", "Moeite met routinewerk"},
		Recommendations: []string{"Maak ideeën concreet met deadlines", "Betrek anderen bij je denkproces", "Let op je emotionele behoeften"},
	},
	"ESTP": {
		Description:     "De Ondernemer: energiek, direct en actiegericht. Je pakt kansen zodra ze zich voordoen.",
		Strengths:       []string{"Daadkrachtig", "Sociaal", "Praktisch", "Aanpassingsvermogen"},
		Challenges:      []string{"Impulsief", "Ongeduldig", "Kan risico's onderschatten"},
		Recommendations: []string{"Denk na voordat je handelt", "Houd rekening met de lange termijn", "Luister naar andere perspectieven"},
	},
	"ESFP": {
		Description:     "De Entertainer: spontaan, enthousiast en hartelijk. Je brengt energie en plezier in elke groep.",
		Strengths:       []string{"Enthousiast", "Sociaal", "Praktisch", "Observant"},
		Challenges:      []string{"Moeite met langetermijnplanning", "Vermijdt conflicten", "Raakt snel afgeleid"},
		Recommendations: []string{"Stel heldere doelen", "Maak ruimte voor reflectie", "Ga moeilijke gesprekken niet uit de weg"},
	},
	"ENFP": {
		Description:     "De Campaigner: enthousiast, creatief en sociaal. Je ziet overal mogelijkheden en inspireert anderen.",
		Strengths:       []string{"Enthousiast", "Creatief", "Communicatief", "Inspirerend"},
		Challenges:      []string{"Moeite met focus", "Overweldigd door details", "Neemt te veel hooi op de vork"},
		Recommendations: []string{"Kies bewust je prioriteiten", "Maak projecten af voordat je nieuwe begint", "Gebruik eenvoudige routines"},
	},
	"ENTP": {
		Description:     "De Debater: slim, nieuwsgierig en vindingrijk. Je houdt van intellectuele uitdagingen.",
		Strengths:       []string{"Innovatief", "Snel van begrip", "Welbespraakt", "Energiek"},
		Challenges:      []string{"Kan twistziek zijn", "Moeite met afronden", "Ongevoelig voor gevoelens van anderen"},
		Recommendations: []string{"Werk ideeën uit tot het einde", "Let op hoe je boodschap overkomt", "Waardeer structuur"},
	},
	"ESTJ": {
		Description:     "De Directeur: georganiseerd, daadkrachtig en praktisch. Je brengt structuur en neemt de leiding.",
		Strengths:       []string{"Georganiseerd", "Leiderschap", "Betrouwbaar", "Resultaatgericht"},
		Challenges:      []string{"Kan star zijn", "Moeite met emoties van anderen", "Ongeduldig"},
		Recommendations: []string{"Sta open voor andere werkwijzen", "Toon waardering voor anderen", "Neem tijd om te luisteren"},
	},
	"ESFJ": {
		Description:     "De Consul: zorgzaam, sociaal en behulpzaam. Je zorgt voor harmonie en verbinding in je omgeving.",
		Strengths:       []string{"Zorgzaam", "Loyaal", "Sociaal", "Praktisch"},
		Challenges:      []string{"Zoekt veel bevestiging", "Kwetsbaar voor kritiek", "Moeite met verandering"},
		Recommendations: []string{"Vertrouw op je eigen oordeel", "Zorg ook goed voor jezelf", "Omarm nieuwe situaties"},
	},
	"ENFJ": {
		Description:     "De Protagonist: charismatisch, empathisch en inspirerend. Je helpt anderen om te groeien.",
		Strengths:       []string{"Charismatisch", "Empathisch", "Betrouwbaar", "Natuurlijke leider"},
		Challenges:      []string{"Te idealistisch", "Te gevoelig", "Vergeet eigen behoeften"},
		Recommendations: []string{"Stel grenzen in je hulpvaardigheid", "Neem tijd voor jezelf", "Accepteer dat je niet iedereen kunt helpen"},
	},
	"ENTJ": {
		Description:     "De Commandant: doortastend, strategisch en zelfverzekerd. Je zet visie om in resultaten.",
		Strengths:       []string{"Efficiënt", "Zelfverzekerd", "Strategisch", "Besluitvaardig"},
		Challenges:      []string{"Kan dominant zijn", "Ongeduldig", "Weinig oog voor emoties"},
		Recommendations: []string{"Betrek anderen bij beslissingen", "Toon meer geduld", "Geef aandacht aan het welzijn van je team"},
	},
}

// ProfileFor returns the descriptive text for code, or the unknown-type placeholder.
func ProfileFor(code TypeCode) TypeProfile {
	p, ok := profiles[code]
	if !ok {
		return TypeProfile{
			TypeCode:        code,
			Description:     UnknownTypeDescription,
			Strengths:       []string{},
			Challenges:      []string{},
			Recommendations: []string{},
		}
	}
	return TypeProfile{
		TypeCode:        code,
		Description:     p.Description,
		Strengths:       cloneStrings(p.Strengths),
		Challenges:      cloneStrings(p.Challenges),
		Recommendations: cloneStrings(p.Recommendations),
	}
}

func Description(code TypeCode) string { return ProfileFor(code).Description }

func Strengths(code TypeCode) []string { return ProfileFor(code).Strengths }

func Challenges(code TypeCode) []string { return ProfileFor(code).Challenges }

func Recommendations(code TypeCode) []string { return ProfileFor(code).Recommendations }

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
